package domain

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// digestCatalog builds n jobs where job-i scores 25+bonuses via a "role" title
// keyword, with PostedDaysAgo spread to exercise tie-breaking.
func digestCatalog(n int) []Job {
	jobs := make([]Job, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, Job{
			ID:            fmt.Sprintf("job-%02d", i),
			Title:         "Role Engineer",
			PostedDaysAgo: i,
		})
	}
	return jobs
}

func roleProfile() Profile {
	return BuildScoringProfile(Preferences{RoleKeywords: []string{"role"}})
}

func TestSelectDigestReturnsPriorUnchanged(t *testing.T) {
	prior := []DigestEntry{{JobID: "old-1", Score: 90}, {JobID: "old-2", Score: 40}}

	// Catalog and profile both differ from whatever produced the prior
	// digest; the stored result still wins for the rest of the day.
	got := SelectDigest(digestCatalog(5), roleProfile(), prior, true)

	if len(got) != 2 || got[0] != prior[0] || got[1] != prior[1] {
		t.Errorf("SelectDigest() = %v, want stored prior %v", got, prior)
	}
}

func TestSelectDigestEmptyPriorStaysEmpty(t *testing.T) {
	// A generated-but-empty day must not recompute.
	got := SelectDigest(digestCatalog(5), roleProfile(), []DigestEntry{}, true)
	if len(got) != 0 {
		t.Errorf("SelectDigest() = %v, want empty stored digest", got)
	}
}

func TestSelectDigestDropsZeroScores(t *testing.T) {
	jobs := []Job{
		{ID: "match", Title: "Role Engineer", PostedDaysAgo: 5},
		{ID: "no-match", Title: "Chef", PostedDaysAgo: 5},
	}

	got := SelectDigest(jobs, roleProfile(), nil, false)

	if len(got) != 1 || got[0].JobID != "match" {
		t.Errorf("SelectDigest() = %v, want only the scoring job", got)
	}
	for _, entry := range got {
		if entry.Score <= 0 {
			t.Errorf("digest contains non-positive score: %v", entry)
		}
	}
}

func TestSelectDigestCapAndOrdering(t *testing.T) {
	got := SelectDigest(digestCatalog(15), roleProfile(), nil, false)

	if len(got) != DigestLimit {
		t.Fatalf("SelectDigest() returned %d entries, want %d", len(got), DigestLimit)
	}

	// job-00 through job-02 earn the recency bonus on top of the keyword
	// points, so they rank first; ties fall back to freshest-first.
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %v", i, got)
		}
	}
	if got[0].JobID != "job-00" || got[1].JobID != "job-01" || got[2].JobID != "job-02" {
		t.Errorf("recency tie-break broken: %v", got[:3])
	}
	if got[3].JobID != "job-03" {
		t.Errorf("freshest-first tie-break broken at rank 4: %v", got[3])
	}
}

func TestSelectDigestNoMatches(t *testing.T) {
	jobs := []Job{{ID: "a", Title: "Chef", PostedDaysAgo: 9}}
	got := SelectDigest(jobs, roleProfile(), nil, false)
	if len(got) != 0 {
		t.Errorf("SelectDigest() = %v, want empty", got)
	}
}

func TestSelectDigestDeterministic(t *testing.T) {
	jobs := digestCatalog(15)
	profile := roleProfile()

	first := SelectDigest(jobs, profile, nil, false)
	second := SelectDigest(jobs, profile, nil, false)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestDigestText(t *testing.T) {
	jobs := map[string]Job{
		"job-1": {
			ID: "job-1", Title: "Backend Engineer", Company: "Acme",
			Location: "Remote", Experience: "1-3",
			ApplyURL: "https://example.com/apply/1",
		},
	}
	lookup := func(id string) (Job, bool) {
		j, ok := jobs[id]
		return j, ok
	}
	entries := []DigestEntry{
		{JobID: "job-1", Score: 85},
		{JobID: "gone", Score: 70}, // dropped from the catalog, skipped
	}

	text := DigestText(entries, lookup, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"Top 10 Jobs For You - 9AM Digest",
		"Aug 31, 2026",
		"1) Backend Engineer - Acme",
		"Match Score: 85%",
		"https://example.com/apply/1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("DigestText() missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "gone") {
		t.Error("DigestText() rendered an entry whose job is missing")
	}
}
