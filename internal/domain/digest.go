package domain

import "sort"

// DigestLimit caps how many entries a daily digest may carry.
const DigestLimit = 10

// DigestEntry pins a job to the score it had when the digest was generated.
type DigestEntry struct {
	JobID string `json:"id"`
	Score int    `json:"score"`
}

// scoredJob pairs a job with its computed score during selection.
type scoredJob struct {
	job   Job
	score int
}

// SelectDigest picks the daily top matches for a profile.
//
// When a digest already exists for the day (generated=true) it is returned
// unchanged, even when empty, so a second trigger on the same day can never
// recompute. Presence of the stored key, not entry count, is what marks a day
// as generated; "generated, zero matches" and "not yet generated" are
// distinct states and the caller owns that distinction.
//
// Otherwise every catalog job is scored and jobs scoring zero are dropped.
// This cutoff is hardcoded at >0 on purpose: the digest shows any real match
// and is independent of the profile's configurable MinMatchScore used for
// dashboard filtering. Survivors are ordered by score descending, ties broken
// by ascending days-since-posted, and capped at DigestLimit.
func SelectDigest(jobs []Job, profile Profile, prior []DigestEntry, generated bool) []DigestEntry {
	if generated {
		return prior
	}

	scored := make([]scoredJob, 0, len(jobs))
	for _, job := range jobs {
		score := MatchScore(job, profile)
		if score > 0 {
			scored = append(scored, scoredJob{job: job, score: score})
		}
	}

	// Stable sort keeps catalog order for full ties, so regeneration on a
	// later day with identical inputs yields an identical digest.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].job.PostedDaysAgo < scored[j].job.PostedDaysAgo
	})

	if len(scored) > DigestLimit {
		scored = scored[:DigestLimit]
	}

	entries := make([]DigestEntry, 0, len(scored))
	for _, s := range scored {
		entries = append(entries, DigestEntry{JobID: s.job.ID, Score: s.score})
	}
	return entries
}
