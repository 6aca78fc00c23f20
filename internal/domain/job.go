package domain

import (
	"regexp"
	"strconv"
)

// WorkMode is the on-site arrangement advertised by a posting.
type WorkMode string

const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

// Job is a single posting from the catalog.
//
// Jobs are loaded once at startup and never mutated afterwards. Everything
// downstream (scoring, digest selection, saved/status tracking) treats them
// as read-only values keyed by ID.
type Job struct {
	// ID is the canonical unique identifier of the posting.
	ID string `json:"id"`

	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Mode        WorkMode `json:"mode"`
	Experience  string   `json:"experience"` // bucket, e.g. "Fresher", "0-1", "1-3", "3-5"
	Description string   `json:"description"`
	Skills      []string `json:"skills"`

	// SalaryRange is free text like "12-18 LPA" or "90k-120k".
	// It is only loosely parsed, see SalaryValue.
	SalaryRange string `json:"salaryRange"`

	Source        string `json:"source"`        // e.g. "LinkedIn", "Naukri"
	PostedDaysAgo int    `json:"postedDaysAgo"` // >= 0
	ApplyURL      string `json:"applyUrl"`
}

var salaryPattern = regexp.MustCompile(`(\d+)\s*([kK])?`)

// SalaryValue extracts a comparable number from the posting's salary text.
//
// The leading integer is taken; a trailing "k" marker means the figure is an
// annual amount in thousands and gets converted to a monthly-equivalent value
// via (v*12)/100. This is a heuristic for relative sort ordering only, not a
// currency computation. Malformed or absent text yields 0.
func (j Job) SalaryValue() float64 {
	m := salaryPattern.FindStringSubmatch(j.SalaryRange)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v == 0 {
		return 0
	}
	if m[2] != "" {
		return float64(v) * 12 / 100
	}
	return float64(v)
}

// FormatPostedDays renders a days-since-posted count for display.
func FormatPostedDays(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return strconv.Itoa(days) + " days ago"
	}
}
