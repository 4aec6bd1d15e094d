package domain

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders the distance between t and now as a short
// human label: "just now" under a minute, then minutes, hours, days (up to
// 30), months (up to 12) and years, pluralised as needed. Future dates read
// "in 3 days" rather than "3 days ago".
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	future := diff < 0
	if future {
		diff = -diff
	}
	if diff < time.Minute {
		return "just now"
	}

	var n int
	var unit string
	switch {
	case diff < time.Hour:
		n, unit = int(diff/time.Minute), "minute"
	case diff < 24*time.Hour:
		n, unit = int(diff/time.Hour), "hour"
	case diff < 30*24*time.Hour:
		n, unit = int(diff/(24*time.Hour)), "day"
	case diff < 360*24*time.Hour:
		n, unit = int(diff/(30*24*time.Hour)), "month"
	default:
		n, unit = int(diff/(365*24*time.Hour)), "year"
		if n < 1 {
			n = 1
		}
	}
	if n != 1 {
		unit += "s"
	}

	if future {
		return fmt.Sprintf("in %d %s", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// IsOverdue reports whether t is strictly before now. A date exactly equal
// to now is not overdue.
func IsOverdue(t, now time.Time) bool {
	return t.Before(now)
}
