package domain

import "testing"

func TestSalaryValue(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		want   float64
	}{
		{"annual thousands", "90k", 10.8},
		{"uppercase marker", "90K", 10.8},
		{"raw monthly figure", "45", 45},
		{"range takes leading figure", "90k-120k", 10.8},
		{"text prefix", "INR 12k per month", 1.44},
		{"not a number", "n/a", 0},
		{"empty", "", 0},
		{"competitive", "Competitive", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := Job{SalaryRange: tt.salary}
			if got := job.SalaryValue(); got != tt.want {
				t.Errorf("SalaryValue(%q) = %v, want %v", tt.salary, got, tt.want)
			}
		})
	}
}

func TestFormatPostedDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "Today"},
		{1, "1 day ago"},
		{2, "2 days ago"},
		{14, "14 days ago"},
	}

	for _, tt := range tests {
		if got := FormatPostedDays(tt.days); got != tt.want {
			t.Errorf("FormatPostedDays(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
