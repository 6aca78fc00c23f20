package domain

import "strings"

// DefaultMinMatchScore is the dashboard threshold used when the user has
// never configured one.
const DefaultMinMatchScore = 40

// Preferences is the raw user-supplied profile, persisted as-is.
//
// Free-text lists may carry arbitrary casing and whitespace; nothing here is
// suitable for scoring until it has gone through BuildScoringProfile.
type Preferences struct {
	RoleKeywords       []string   `json:"roleKeywords"`
	PreferredLocations []string   `json:"preferredLocations"`
	PreferredModes     []WorkMode `json:"preferredModes"`
	ExperienceLevel    string     `json:"experienceLevel"` // single bucket, "" = any
	Skills             []string   `json:"skills"`
	MinMatchScore      int        `json:"minMatchScore"`
}

// DefaultPreferences is the profile substituted when nothing is persisted or
// the persisted blob cannot be decoded.
func DefaultPreferences() Preferences {
	return Preferences{
		RoleKeywords:       []string{},
		PreferredLocations: []string{},
		PreferredModes:     []WorkMode{},
		Skills:             []string{},
		MinMatchScore:      DefaultMinMatchScore,
	}
}

// Profile is the normalized form of Preferences consumed by the scoring
// engine. Keyword and skill lists are lower-cased, trimmed and free of empty
// strings; the threshold is clamped to [0,100]. Locations and modes stay
// verbatim because they are matched exactly.
type Profile struct {
	RoleKeywords       []string
	PreferredLocations []string
	PreferredModes     []WorkMode
	ExperienceLevel    string
	Skills             []string
	MinMatchScore      int
}

// BuildScoringProfile validates and normalizes raw preferences at the
// boundary so the scoring logic never has to re-check list shapes.
func BuildScoringProfile(p Preferences) Profile {
	return Profile{
		RoleKeywords:       normalizeList(p.RoleKeywords),
		PreferredLocations: append([]string(nil), p.PreferredLocations...),
		PreferredModes:     append([]WorkMode(nil), p.PreferredModes...),
		ExperienceLevel:    p.ExperienceLevel,
		Skills:             normalizeList(p.Skills),
		MinMatchScore:      clampScore(p.MinMatchScore),
	}
}

// HasSignals reports whether the profile carries at least one scoring
// criterion. With no signals every job caps out at the recency and source
// bonuses; callers use this to show the "no preferences configured" state but
// the scoring engine itself never refuses to compute.
func (p Profile) HasSignals() bool {
	return len(p.RoleKeywords) > 0 ||
		len(p.PreferredLocations) > 0 ||
		len(p.PreferredModes) > 0 ||
		p.ExperienceLevel != "" ||
		len(p.Skills) > 0
}

func normalizeList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
