package domain

import (
	"testing"
	"time"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"seconds ago is just now", now.Add(-30 * time.Second), "just now"},
		{"seconds ahead is just now", now.Add(45 * time.Second), "just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"future minutes", now.Add(10 * time.Minute), "in 10 minutes"},
		{"one hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"hours", now.Add(-7 * time.Hour), "7 hours ago"},
		{"days", now.Add(-48 * time.Hour), "2 days ago"},
		{"future days", now.Add(3 * 24 * time.Hour), "in 3 days"},
		{"just under a month", now.Add(-29 * 24 * time.Hour), "29 days ago"},
		{"one month", now.Add(-31 * 24 * time.Hour), "1 month ago"},
		{"months", now.Add(-100 * 24 * time.Hour), "3 months ago"},
		{"eleven months", now.Add(-340 * 24 * time.Hour), "11 months ago"},
		{"almost a year rounds up", now.Add(-362 * 24 * time.Hour), "1 year ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 years ago"},
		{"future years", now.Add(3 * 365 * 24 * time.Hour), "in 3 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRelativeTime(tt.date, now)
			if got != tt.want {
				t.Errorf("FormatRelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if !IsOverdue(now.Add(-time.Second), now) {
		t.Error("date before now should be overdue")
	}
	if IsOverdue(now, now) {
		t.Error("date equal to now must not be overdue")
	}
	if IsOverdue(now.Add(time.Second), now) {
		t.Error("future date must not be overdue")
	}
}
