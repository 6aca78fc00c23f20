package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestParseStatusValidValues(t *testing.T) {
	valid := []string{"Not Applied", "Applied", "Rejected", "Selected"}
	for _, s := range valid {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatusInvalidValues(t *testing.T) {
	for _, s := range []string{"", "applied", "UNKNOWN", "Not  Applied"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", s)
		}
	}
}

func TestPushHistoryNewestFirst(t *testing.T) {
	now := time.Now()
	history := []HistoryEntry{
		{ID: "older", JobID: "job-1", Status: StatusApplied, ChangedAt: now.Add(-time.Hour)},
	}

	history = PushHistory(history, HistoryEntry{
		ID: "newest", JobID: "job-2", Status: StatusSelected, ChangedAt: now,
	})

	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].ID != "newest" || history[1].ID != "older" {
		t.Errorf("history not newest-first: %v", history)
	}
}

func TestPushHistoryCap(t *testing.T) {
	var history []HistoryEntry
	for i := 0; i < HistoryLimit+5; i++ {
		history = PushHistory(history, HistoryEntry{
			ID:     fmt.Sprintf("entry-%d", i),
			JobID:  "job-1",
			Status: StatusApplied,
		})
	}

	if len(history) != HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), HistoryLimit)
	}
	// Oldest entries are the ones dropped.
	if history[0].ID != fmt.Sprintf("entry-%d", HistoryLimit+4) {
		t.Errorf("newest entry = %s, want entry-%d", history[0].ID, HistoryLimit+4)
	}
	if history[HistoryLimit-1].ID != "entry-5" {
		t.Errorf("oldest surviving entry = %s, want entry-5", history[HistoryLimit-1].ID)
	}
}

func TestPushHistoryDoesNotMutateInput(t *testing.T) {
	original := []HistoryEntry{{ID: "a"}, {ID: "b"}}
	_ = PushHistory(original, HistoryEntry{ID: "c"})

	if original[0].ID != "a" || len(original) != 2 {
		t.Error("PushHistory mutated its input slice")
	}
}
