package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jobpulse/pulse/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness: the service can answer once the catalog holds at
// least one job. Redis being down degrades responses but does not gate
// readiness.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ready := d.Catalog.Count() > 0

		w.Header().Set("Content-Type", "application/json")
		if !ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready: ready,
		})
	}
}
