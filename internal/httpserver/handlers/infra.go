package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jobpulse/pulse/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	JobsLoaded *int   `json:"jobs_loaded,omitempty"`
	LoadedAt   string `json:"loaded_at,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		jobsCount := d.Catalog.Count()
		loadedAt := d.Catalog.LoadedAt()
		loadedAtStr := "never"
		if !loadedAt.IsZero() {
			loadedAtStr = loadedAt.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:         jobsCount > 0,
				JobsLoaded: &jobsCount,
				LoadedAt:   loadedAtStr,
			},
			"redis": checkRedis(d),
			"scoring": {
				OK:   true,
				Mode: "additive-weights",
			},
		}

		response := infraResponse{
			Status:     overallStatus(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func overallStatus(components map[string]componentStatus) string {
	// No jobs means nothing to score or digest.
	if catalog, exists := components["catalog"]; exists {
		if !catalog.OK || (catalog.JobsLoaded != nil && *catalog.JobsLoaded == 0) {
			return "critical"
		}
	}

	// Redis down means preferences, statuses and digests fall back to defaults.
	if rd, exists := components["redis"]; exists && !rd.OK {
		return "degraded"
	}

	return "ok"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "persistence-enabled",
		Error:  "none",
	}
}
