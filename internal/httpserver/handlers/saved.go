package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

type savedResponse struct {
	JobID string `json:"jobId"`
	Saved bool   `json:"saved"`
}

// SaveJob marks a catalog job as saved.
func SaveJob(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := d.Catalog.Get(id); !ok {
			writeError(w, http.StatusNotFound, "job_not_found")
			return
		}
		if err := store.SaveJob(r.Context(), id); err != nil {
			d.Logger.Error("failed to save job", logger.String("job_id", id), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}
		writeJSON(w, http.StatusOK, savedResponse{JobID: id, Saved: true})
	}
}

// UnsaveJob removes a job from the saved set.
func UnsaveJob(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := d.Catalog.Get(id); !ok {
			writeError(w, http.StatusNotFound, "job_not_found")
			return
		}
		if err := store.UnsaveJob(r.Context(), id); err != nil {
			d.Logger.Error("failed to unsave job", logger.String("job_id", id), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}
		writeJSON(w, http.StatusOK, savedResponse{JobID: id, Saved: false})
	}
}

// ListSaved serves the saved jobs, scored and decorated like the dashboard.
// Saved IDs whose job left the catalog are skipped silently.
func ListSaved(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ids, err := store.GetSavedJobIDs(ctx)
		if err != nil {
			d.Logger.Warn("saved jobs unavailable", logger.Error(err))
		}

		prefs, err := store.GetPreferences(ctx)
		if err != nil {
			d.Logger.Warn("preferences unavailable, scoring with defaults", logger.Error(err))
		}
		profile := domain.BuildScoringProfile(prefs)

		statuses, err := store.GetStatusMap(ctx)
		if err != nil {
			d.Logger.Warn("status map unavailable", logger.Error(err))
		}

		views := make([]jobView, 0, len(ids))
		for _, id := range ids {
			job, ok := d.Catalog.Get(id)
			if !ok {
				continue
			}
			status, ok := statuses[id]
			if !ok {
				status = domain.StatusNotApplied
			}
			views = append(views, jobView{
				Job:        job,
				Score:      domain.MatchScore(job, profile),
				Status:     status,
				Saved:      true,
				PostedText: domain.FormatPostedDays(job.PostedDaysAgo),
			})
		}

		writeJSON(w, http.StatusOK, jobListResponse{
			Jobs:           views,
			HasPreferences: profile.HasSignals(),
			MinMatchScore:  profile.MinMatchScore,
		})
	}
}
