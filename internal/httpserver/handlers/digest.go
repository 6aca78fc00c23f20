package handlers

import (
	"context"
	"net/http"

	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

// digestItem is one digest entry enriched with catalog data for rendering.
type digestItem struct {
	domain.DigestEntry
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	ApplyURL   string `json:"applyUrl"`
}

type digestResponse struct {
	Date          string        `json:"date"`
	Jobs          []digestItem  `json:"jobs"`
	FromStore     bool          `json:"fromStore"` // true when today's stored digest was reused
	RecentUpdates []historyView `json:"recentUpdates"`
}

// GenerateDigest simulates the daily 9AM trigger for today.
//
// The first call of a calendar day computes and persists the selection; any
// further call that day returns the stored digest unchanged, whatever happened
// to the profile or catalog in between. With no preference signals
// configured there is nothing meaningful to rank, so generation is refused;
// that refusal lives here, not in the scoring engine.
func GenerateDigest(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		now := d.TimeNow()
		day := redisstore.DigestDay(now)

		prefs, err := store.GetPreferences(ctx)
		if err != nil {
			d.Logger.Warn("preferences unavailable, using defaults", logger.Error(err))
		}
		profile := domain.BuildScoringProfile(prefs)
		if !profile.HasSignals() {
			writeError(w, http.StatusConflict, "no_preferences_configured")
			return
		}

		prior, found, err := store.GetDigest(ctx, day)
		if err != nil {
			d.Logger.Error("failed to load digest", logger.String("day", day), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}

		entries := domain.SelectDigest(d.Catalog.All(), profile, prior, found)
		if !found {
			if err := store.SaveDigest(ctx, day, entries); err != nil {
				d.Logger.Error("failed to persist digest", logger.String("day", day), logger.Error(err))
				writeError(w, http.StatusInternalServerError, "store_unavailable")
				return
			}
			d.Logger.Info("digest generated",
				logger.String("day", day),
				logger.Int("entries", len(entries)))
		}

		writeJSON(w, http.StatusOK, buildDigestResponse(ctx, d, store, day, entries, found))
	}
}

// GetDigest serves today's digest if one was generated. An absent key is a
// 404, distinct from a generated-but-empty digest, which is a 200 with an
// empty list.
func GetDigest(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		day := redisstore.DigestDay(d.TimeNow())

		entries, found, err := store.GetDigest(ctx, day)
		if err != nil {
			d.Logger.Error("failed to load digest", logger.String("day", day), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, "digest_not_generated")
			return
		}

		writeJSON(w, http.StatusOK, buildDigestResponse(ctx, d, store, day, entries, true))
	}
}

// DigestText serves the plain-text rendering of today's digest.
func DigestText(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		now := d.TimeNow()
		day := redisstore.DigestDay(now)

		entries, found, err := store.GetDigest(r.Context(), day)
		if err != nil {
			d.Logger.Error("failed to load digest", logger.String("day", day), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}
		if !found {
			writeError(w, http.StatusNotFound, "digest_not_generated")
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(domain.DigestText(entries, d.Catalog.Get, now)))
	}
}

// recentUpdateLimit caps how many history entries ride along with a digest.
const recentUpdateLimit = 10

func buildDigestResponse(
	ctx context.Context,
	d deps.Deps,
	store *redisstore.Store,
	day string,
	entries []domain.DigestEntry,
	fromStore bool,
) digestResponse {
	items := make([]digestItem, 0, len(entries))
	for _, entry := range entries {
		job, ok := d.Catalog.Get(entry.JobID)
		if !ok {
			// Pinned to a job that left the catalog; nothing to render.
			continue
		}
		items = append(items, digestItem{
			DigestEntry: entry,
			Title:       job.Title,
			Company:     job.Company,
			Location:    job.Location,
			Experience:  job.Experience,
			ApplyURL:    job.ApplyURL,
		})
	}

	history, err := store.GetStatusHistory(ctx)
	if err != nil {
		d.Logger.Warn("status history unavailable", logger.Error(err))
	}
	updates := make([]historyView, 0, recentUpdateLimit)
	for _, entry := range history {
		if len(updates) == recentUpdateLimit {
			break
		}
		job, ok := d.Catalog.Get(entry.JobID)
		if !ok {
			continue
		}
		updates = append(updates, historyView{
			HistoryEntry: entry,
			Title:        job.Title,
			Company:      job.Company,
		})
	}

	return digestResponse{
		Date:          day,
		Jobs:          items,
		FromStore:     fromStore,
		RecentUpdates: updates,
	}
}
