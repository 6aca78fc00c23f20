package domain

import (
	"fmt"
	"strings"
	"time"
)

// DigestText renders a digest as the plain-text block shown in the copy/email
// view. Entries whose job is no longer in the catalog are skipped.
func DigestText(entries []DigestEntry, lookup func(id string) (Job, bool), date time.Time) string {
	var b strings.Builder

	b.WriteString("Top 10 Jobs For You - 9AM Digest\n")
	b.WriteString(date.Format("Jan 2, 2006"))
	b.WriteString("\n\n")

	n := 0
	for _, entry := range entries {
		job, ok := lookup(entry.JobID)
		if !ok {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d) %s - %s\n", n, job.Title, job.Company)
		fmt.Fprintf(&b, "   Location: %s\n", job.Location)
		fmt.Fprintf(&b, "   Experience: %s years\n", job.Experience)
		fmt.Fprintf(&b, "   Match Score: %d%%\n", entry.Score)
		fmt.Fprintf(&b, "   Apply: %s\n\n", job.ApplyURL)
	}

	b.WriteString("This digest was generated based on your preferences.\n")
	b.WriteString("Demo Mode: Daily 9AM trigger simulated manually.\n")
	return b.String()
}
