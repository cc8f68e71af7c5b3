// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"

	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"
)

// FormatPercent renders an integer percentage, e.g. 87 -> "87%".
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// FormatStreak renders a day count, e.g. 1 -> "1 day", 3 -> "3 days".
func FormatStreak(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday
// number (0 = Sunday).
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDate renders a DateKey as "Mon, Jan 2 2006".
func FormatDate(d model.DateKey) string {
	t := d.Time()
	if t.IsZero() {
		return string(d)
	}
	return t.Format("Mon, Jan 2 2006")
}

// StatusGlyph maps a per-activity status to its checklist glyph.
func StatusGlyph(s stats.ActivityStatus) string {
	switch s {
	case stats.StatusCompleted:
		return "✓"
	case stats.StatusTrackedIncomplete:
		return "✗"
	default:
		return "·"
	}
}

// FormatFraction renders "done/total", e.g. "2/5".
func FormatFraction(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}
