package domain

import "strings"

const (
	// Scoring weights
	ScoreTitleKeyword  = 25
	ScoreDescKeyword   = 15
	ScoreLocationMatch = 15
	ScoreModeMatch     = 10
	ScoreExperience    = 10
	ScoreSkillOverlap  = 15
	ScoreRecencyBonus  = 5
	ScoreSourceBonus   = 5

	// RecencyMaxDays is the age (in days) up to which a posting still earns
	// the recency bonus.
	RecencyMaxDays = 2

	// BonusSource is the job source that earns the source bonus.
	BonusSource = "LinkedIn"

	// MaxScore is the score ceiling. The weights above sum to exactly 100,
	// so the clamp guards future weight changes rather than a reachable path.
	MaxScore = 100
)

// MatchScore computes the relevance of a job against a normalized profile.
//
// The result is an integer in [0,100]. Each criterion is independent and only
// contributes when the profile carries that signal; missing or empty job
// fields contribute zero. Deterministic and side-effect-free.
func MatchScore(job Job, profile Profile) int {
	score := 0

	titleLower := strings.ToLower(job.Title)
	descLower := strings.ToLower(job.Description)

	if len(profile.RoleKeywords) > 0 {
		titleMatch, descMatch := false, false
		for _, keyword := range profile.RoleKeywords {
			if !titleMatch && strings.Contains(titleLower, keyword) {
				titleMatch = true
			}
			if !descMatch && strings.Contains(descLower, keyword) {
				descMatch = true
			}
			if titleMatch && descMatch {
				break
			}
		}
		if titleMatch {
			score += ScoreTitleKeyword
		}
		if descMatch {
			score += ScoreDescKeyword
		}
	}

	if containsString(profile.PreferredLocations, job.Location) {
		score += ScoreLocationMatch
	}

	if containsMode(profile.PreferredModes, job.Mode) {
		score += ScoreModeMatch
	}

	if profile.ExperienceLevel != "" && job.Experience == profile.ExperienceLevel {
		score += ScoreExperience
	}

	if len(profile.Skills) > 0 && skillOverlap(job.Skills, profile.Skills) {
		score += ScoreSkillOverlap
	}

	if job.PostedDaysAgo <= RecencyMaxDays {
		score += ScoreRecencyBonus
	}

	if job.Source == BonusSource {
		score += ScoreSourceBonus
	}

	return clampScore(score)
}

// skillOverlap reports whether any job skill, lower-cased and trimmed,
// appears in the profile skill set.
func skillOverlap(jobSkills, profileSkills []string) bool {
	for _, skill := range jobSkills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		for _, want := range profileSkills {
			if skill == want {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsMode(list []WorkMode, value WorkMode) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
