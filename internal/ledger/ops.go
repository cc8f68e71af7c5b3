// Package ledger implements the mutating operations on the habit
// ledger: activity management, completion toggling, theme switching,
// and app-open tracking. Operations validate before mutating; a failed
// operation leaves the ledger untouched.
package ledger

import (
	"html"
	"strings"

	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"
)

// SanitizeName trims raw and escapes HTML metacharacters. The escaped
// form is what uniqueness and length limits apply to.
func SanitizeName(raw string) string {
	return html.EscapeString(strings.TrimSpace(raw))
}

// AddActivity validates and appends a new activity, preserving
// insertion order. Fails with ErrInvalidName, ErrDuplicateName, or
// ErrLimitExceeded.
func AddActivity(l *model.Ledger, raw string) error {
	name := SanitizeName(raw)
	if name == "" || len(name) > model.MaxNameLen {
		return ErrInvalidName
	}
	if l.HasActivity(name) {
		return ErrDuplicateName
	}
	if len(l.Activities) >= model.MaxActivities {
		return ErrLimitExceeded
	}
	l.Activities = append(l.Activities, name)
	return nil
}

// DeleteActivity removes name from the activity list and purges its
// key from every daily record, so no orphaned per-activity data
// survives. A name that does not exist is a no-op, not an error.
func DeleteActivity(l *model.Ledger, name string) {
	n := 0
	for _, a := range l.Activities {
		if a != name {
			l.Activities[n] = a
			n++
		}
	}
	if n == len(l.Activities) {
		return
	}
	l.Activities = l.Activities[:n]

	for date, rec := range l.DailyRecords {
		delete(rec, name)
		if len(rec) == 0 {
			delete(l.DailyRecords, date)
		}
	}
}

// ToggleActivity flips the completion flag for (date, name). Toggling
// from the implicit untracked state marks the activity complete. A
// name outside the activity list fails with ErrUnknownActivity rather
// than polluting records with stale keys.
func ToggleActivity(l *model.Ledger, name string, date model.DateKey) error {
	if !l.HasActivity(name) {
		return ErrUnknownActivity
	}
	rec, ok := l.DailyRecords[date]
	if !ok {
		rec = model.DailyRecord{}
		l.DailyRecords[date] = rec
	}
	rec[name] = !rec[name]
	return nil
}

// ToggleTheme switches between light and dark.
func ToggleTheme(l *model.Ledger) {
	if l.Theme == model.ThemeDark {
		l.Theme = model.ThemeLight
	} else {
		l.Theme = model.ThemeDark
	}
}

// MarkOpened records that the app was opened on today's date and
// refreshes the cached streak fields. Calling it repeatedly within the
// same day is idempotent.
func MarkOpened(l *model.Ledger, today model.DateKey) {
	l.AppOpens[today] = true
	RecomputeStreaks(l, today)
	l.LastResetDate = today
}

// RecomputeStreaks re-derives the cached streak fields from the
// app-open log. This is the only writer of CurrentStreak/BestStreak.
func RecomputeStreaks(l *model.Ledger, today model.DateKey) {
	s := stats.RecomputeStreaks(l.AppOpens, today)
	l.CurrentStreak = s.Current
	l.BestStreak = s.Best
}
