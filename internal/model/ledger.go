// Package model defines the habit ledger domain types and the
// schema-validating boundary for persisted ledger data.
package model

import (
	"sort"
	"time"
)

// Limits enforced on the activity list.
const (
	MaxActivities = 50
	MaxNameLen    = 100
)

// Theme is the UI color scheme stored with the ledger.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DailyRecord maps activity name -> completion flag for a single date.
// An absent key means the activity was not tracked that day, which is
// distinct from an explicit false (tracked and not completed).
type DailyRecord map[string]bool

// Ledger is the aggregate root holding all habit-tracking state.
//
// CurrentStreak and BestStreak are cached values, always re-derivable
// from AppOpens and the current date. Only the streak-update path
// writes them.
type Ledger struct {
	Activities    []string                `json:"activities"`
	DailyRecords  map[DateKey]DailyRecord `json:"daily_records"`
	AppOpens      map[DateKey]bool        `json:"app_opens"`
	CurrentStreak int                     `json:"current_streak"`
	BestStreak    int                     `json:"best_streak"`
	LastResetDate DateKey                 `json:"last_reset_date"`
	Theme         Theme                   `json:"theme"`
}

// New returns a freshly initialized ledger: no activities, no records,
// today recorded as the reset/open date, light theme. The single open
// day makes both streaks 1.
func New(today DateKey) *Ledger {
	return &Ledger{
		Activities:    []string{},
		DailyRecords:  make(map[DateKey]DailyRecord),
		AppOpens:      map[DateKey]bool{today: true},
		CurrentStreak: 1,
		BestStreak:    1,
		LastResetDate: today,
		Theme:         ThemeLight,
	}
}

// HasActivity reports whether name is in the activity list
// (case-sensitive exact match).
func (l *Ledger) HasActivity(name string) bool {
	for _, a := range l.Activities {
		if a == name {
			return true
		}
	}
	return false
}

// Record returns the daily record for date, or an empty one if the date
// has never been touched. The returned map must not be mutated by
// callers; use the ledger operations instead.
func (l *Ledger) Record(date DateKey) DailyRecord {
	if rec, ok := l.DailyRecords[date]; ok {
		return rec
	}
	return DailyRecord{}
}

// OpenDates returns all app-open DateKeys in ascending order.
func (l *Ledger) OpenDates() []DateKey {
	dates := make([]DateKey, 0, len(l.AppOpens))
	for d := range l.AppOpens {
		dates = append(dates, d)
	}
	// YYYY-MM-DD sorts correctly as plain strings.
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
