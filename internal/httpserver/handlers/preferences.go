package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

// preferencesPayload is the write shape for the settings view. Validation
// rejects out-of-range thresholds and unknown work modes at the boundary;
// keyword/skill normalization happens later in BuildScoringProfile.
type preferencesPayload struct {
	RoleKeywords       []string `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredModes     []string `json:"preferredModes" validate:"dive,oneof=Remote Hybrid Onsite"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             []string `json:"skills"`
	MinMatchScore      int      `json:"minMatchScore" validate:"min=0,max=100"`
}

type preferencesResponse struct {
	domain.Preferences
	HasPreferences bool `json:"hasPreferences"`
}

// GetPreferences serves the persisted raw profile.
func GetPreferences(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := store.GetPreferences(r.Context())
		if err != nil {
			d.Logger.Warn("preferences unavailable, serving defaults", logger.Error(err))
		}
		writeJSON(w, http.StatusOK, preferencesResponse{
			Preferences:    prefs,
			HasPreferences: domain.BuildScoringProfile(prefs).HasSignals(),
		})
	}
}

// UpdatePreferences validates and persists a new profile.
func UpdatePreferences(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		var payload preferencesPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if err := d.Validate.Struct(payload); err != nil {
			d.Logger.Debug("preferences payload rejected", logger.Error(err))
			writeError(w, http.StatusBadRequest, "invalid_preferences")
			return
		}

		modes := make([]domain.WorkMode, 0, len(payload.PreferredModes))
		for _, m := range payload.PreferredModes {
			modes = append(modes, domain.WorkMode(m))
		}
		prefs := domain.Preferences{
			RoleKeywords:       payload.RoleKeywords,
			PreferredLocations: payload.PreferredLocations,
			PreferredModes:     modes,
			ExperienceLevel:    payload.ExperienceLevel,
			Skills:             payload.Skills,
			MinMatchScore:      payload.MinMatchScore,
		}

		if err := store.SavePreferences(r.Context(), prefs); err != nil {
			d.Logger.Error("failed to save preferences", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "store_unavailable")
			return
		}

		d.Logger.Info("preferences updated",
			logger.Int("role_keywords", len(prefs.RoleKeywords)),
			logger.Int("min_match_score", prefs.MinMatchScore))

		writeJSON(w, http.StatusOK, preferencesResponse{
			Preferences:    prefs,
			HasPreferences: domain.BuildScoringProfile(prefs).HasSignals(),
		})
	}
}
