package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

// jobView is a catalog job decorated with per-user state for rendering.
type jobView struct {
	domain.Job
	Score      int           `json:"score"`
	Status     domain.Status `json:"status"`
	Saved      bool          `json:"saved"`
	PostedText string        `json:"postedText"`
}

type jobListResponse struct {
	Jobs           []jobView `json:"jobs"`
	HasPreferences bool      `json:"hasPreferences"`
	MinMatchScore  int       `json:"minMatchScore"`
}

// ListJobs serves the dashboard: every catalog job scored against the
// current profile, with optional filtering and sorting.
//
// Query parameters: q (free text over title/company/skills), location, mode,
// experience, source, status, matchesOnly (score >= the profile's
// MinMatchScore), sort (match|salary|recency; default catalog order).
func ListJobs(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		views, profile := buildJobViews(r, d, store)
		views = applyFilters(views, r, profile)
		applySort(views, r.URL.Query().Get("sort"))

		writeJSON(w, http.StatusOK, jobListResponse{
			Jobs:           views,
			HasPreferences: profile.HasSignals(),
			MinMatchScore:  profile.MinMatchScore,
		})
	}
}

// GetJob serves a single job with its score, status and saved flag.
func GetJob(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		job, ok := d.Catalog.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "job_not_found")
			return
		}

		prefs, err := store.GetPreferences(ctx)
		if err != nil {
			d.Logger.Warn("preferences unavailable, scoring with defaults", logger.Error(err))
		}
		profile := domain.BuildScoringProfile(prefs)

		status, err := store.GetStatus(ctx, id)
		if err != nil {
			d.Logger.Warn("status unavailable", logger.Error(err))
		}
		saved, err := store.IsJobSaved(ctx, id)
		if err != nil {
			d.Logger.Warn("saved flag unavailable", logger.Error(err))
		}

		writeJSON(w, http.StatusOK, jobView{
			Job:        job,
			Score:      domain.MatchScore(job, profile),
			Status:     status,
			Saved:      saved,
			PostedText: domain.FormatPostedDays(job.PostedDaysAgo),
		})
	}
}

// buildJobViews scores the whole catalog once and decorates it with the
// user's status and saved state. Store failures degrade to defaults; a
// broken Redis read must never take the dashboard down.
func buildJobViews(r *http.Request, d deps.Deps, store *redisstore.Store) ([]jobView, domain.Profile) {
	ctx := r.Context()

	prefs, err := store.GetPreferences(ctx)
	if err != nil {
		d.Logger.Warn("preferences unavailable, scoring with defaults", logger.Error(err))
	}
	profile := domain.BuildScoringProfile(prefs)

	statuses, err := store.GetStatusMap(ctx)
	if err != nil {
		d.Logger.Warn("status map unavailable", logger.Error(err))
	}

	savedIDs, err := store.GetSavedJobIDs(ctx)
	if err != nil {
		d.Logger.Warn("saved jobs unavailable", logger.Error(err))
	}
	savedSet := make(map[string]bool, len(savedIDs))
	for _, id := range savedIDs {
		savedSet[id] = true
	}

	jobs := d.Catalog.All()
	views := make([]jobView, 0, len(jobs))
	for _, job := range jobs {
		status, ok := statuses[job.ID]
		if !ok {
			status = domain.StatusNotApplied
		}
		views = append(views, jobView{
			Job:        job,
			Score:      domain.MatchScore(job, profile),
			Status:     status,
			Saved:      savedSet[job.ID],
			PostedText: domain.FormatPostedDays(job.PostedDaysAgo),
		})
	}
	return views, profile
}

func applyFilters(views []jobView, r *http.Request, profile domain.Profile) []jobView {
	q := r.URL.Query()
	keyword := strings.ToLower(strings.TrimSpace(q.Get("q")))
	location := q.Get("location")
	mode := q.Get("mode")
	experience := q.Get("experience")
	source := q.Get("source")
	status := q.Get("status")
	matchesOnly := q.Get("matchesOnly") == "true"

	out := views[:0]
	for _, v := range views {
		if keyword != "" && !matchesKeyword(v.Job, keyword) {
			continue
		}
		if location != "" && v.Location != location {
			continue
		}
		if mode != "" && string(v.Mode) != mode {
			continue
		}
		if experience != "" && v.Experience != experience {
			continue
		}
		if source != "" && v.Source != source {
			continue
		}
		if status != "" && string(v.Status) != status {
			continue
		}
		// The dashboard toggle uses the configurable threshold; this is
		// unrelated to the digest's hardcoded >0 cutoff.
		if matchesOnly && v.Score < profile.MinMatchScore {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesKeyword(job domain.Job, keyword string) bool {
	if strings.Contains(strings.ToLower(job.Title), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Company), keyword) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), keyword) {
			return true
		}
	}
	return false
}

func applySort(views []jobView, key string) {
	switch key {
	case "match":
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Score > views[j].Score
		})
	case "salary":
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].SalaryValue() > views[j].SalaryValue()
		})
	case "recency":
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].PostedDaysAgo < views[j].PostedDaysAgo
		})
	}
	// Anything else keeps catalog order.
}
