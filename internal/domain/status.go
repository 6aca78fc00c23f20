// Application status tracking.
//
// There is no transition graph: the user may set any status at any time,
// including back to "Not Applied". Every set appends to the bounded history
// log regardless of the target value, so the log records all changes rather
// than only forward progress.
package domain

import (
	"fmt"
	"time"
)

// Status is the user's application state for a single job.
type Status string

const (
	StatusNotApplied Status = "Not Applied"
	StatusApplied    Status = "Applied"
	StatusRejected   Status = "Rejected"
	StatusSelected   Status = "Selected"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// HistoryLimit caps the status history log at the most recent entries.
const HistoryLimit = 30

// HistoryEntry is a single status change, newest-first in the log.
type HistoryEntry struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// PushHistory prepends entry to the log and drops the oldest entries beyond
// HistoryLimit. The input slice is not mutated.
func PushHistory(history []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history)+1)
	out = append(out, entry)
	out = append(out, history...)
	if len(out) > HistoryLimit {
		out = out[:HistoryLimit]
	}
	return out
}
