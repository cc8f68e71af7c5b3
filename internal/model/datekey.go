package model

import "time"

// dateKeyLayout is the canonical YYYY-MM-DD form of a DateKey.
const dateKeyLayout = "2006-01-02"

// DateKey is a calendar date in YYYY-MM-DD form, derived from local
// wall-clock time. No timezone is stored.
type DateKey string

// DateKeyOf returns the DateKey for the local calendar day of t.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Local().Format(dateKeyLayout))
}

// Today returns the DateKey for the current local day.
func Today() DateKey {
	return DateKeyOf(time.Now())
}

// Valid reports whether d is a well-formed calendar date.
func (d DateKey) Valid() bool {
	_, err := time.ParseInLocation(dateKeyLayout, string(d), time.Local)
	return err == nil
}

// Time returns the midnight-local time.Time for d. Invalid keys return
// the zero time.
func (d DateKey) Time() time.Time {
	t, err := time.ParseInLocation(dateKeyLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the DateKey n calendar days after d (negative n walks
// backward).
func (d DateKey) AddDays(n int) DateKey {
	return DateKeyOf(d.Time().AddDate(0, 0, n))
}

// NextDayOf reports whether d is exactly one calendar day after prev.
func (d DateKey) NextDayOf(prev DateKey) bool {
	return prev.AddDays(1) == d
}
