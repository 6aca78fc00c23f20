package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

type statusPayload struct {
	Status string `json:"status"`
}

type statusResponse struct {
	JobID  string        `json:"jobId"`
	Status domain.Status `json:"status"`
}

// historyView decorates a history entry with catalog data for rendering.
type historyView struct {
	domain.HistoryEntry
	Title   string `json:"title"`
	Company string `json:"company"`
}

// UpdateStatus overwrites a job's application status. Every accepted call
// lands in the history log, including setting a job back to Not Applied.
func UpdateStatus(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := d.Catalog.Get(id); !ok {
			writeError(w, http.StatusNotFound, "job_not_found")
			return
		}

		var payload statusPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		status, err := domain.ParseStatus(payload.Status)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_status")
			return
		}

		if err := store.SetJobStatus(r.Context(), id, status, d.TimeNow()); err != nil {
			d.Logger.Error("failed to set job status",
				logger.String("job_id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}

		d.Logger.Info("job status updated",
			logger.String("job_id", id),
			logger.String("status", string(status)))

		writeJSON(w, http.StatusOK, statusResponse{JobID: id, Status: status})
	}
}

// StatusHistory serves the bounded change log, newest first, enriched with
// job titles where the job is still in the catalog.
func StatusHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		history, err := store.GetStatusHistory(r.Context())
		if err != nil {
			d.Logger.Warn("status history unavailable", logger.Error(err))
		}

		views := make([]historyView, 0, len(history))
		for _, entry := range history {
			view := historyView{HistoryEntry: entry}
			if job, ok := d.Catalog.Get(entry.JobID); ok {
				view.Title = job.Title
				view.Company = job.Company
			}
			views = append(views, view)
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"history": views,
		})
	}
}
