package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is the not-found signal of storage collaborators: no
// ledger has been persisted yet.
var ErrNotFound = errors.New("no ledger stored")

// ErrMalformed is returned by Parse when persisted data does not match
// the ledger shape. Callers treat it as "not found" and reinitialize.
var ErrMalformed = errors.New("malformed ledger data")

// Parse deserializes and validates a persisted ledger blob. It is the
// single schema-validating boundary for loaded data: anything that does
// not match the expected shape fails with ErrMalformed instead of
// leaking a partially-shaped ledger into the application.
func Parse(data []byte) (*Ledger, error) {
	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	l.normalize()
	return &l, nil
}

// Marshal serializes the ledger for persistence.
func Marshal(l *Ledger) ([]byte, error) {
	return json.Marshal(l)
}

func (l *Ledger) validate() error {
	if len(l.Activities) > MaxActivities {
		return fmt.Errorf("%w: %d activities exceeds limit", ErrMalformed, len(l.Activities))
	}
	seen := make(map[string]bool, len(l.Activities))
	for _, a := range l.Activities {
		if a == "" || len(a) > MaxNameLen {
			return fmt.Errorf("%w: bad activity name %q", ErrMalformed, a)
		}
		if seen[a] {
			return fmt.Errorf("%w: duplicate activity %q", ErrMalformed, a)
		}
		seen[a] = true
	}
	if l.CurrentStreak < 0 || l.BestStreak < 0 {
		return fmt.Errorf("%w: negative streak", ErrMalformed)
	}
	if l.LastResetDate != "" && !l.LastResetDate.Valid() {
		return fmt.Errorf("%w: bad reset date %q", ErrMalformed, l.LastResetDate)
	}
	for d := range l.DailyRecords {
		if !d.Valid() {
			return fmt.Errorf("%w: bad record date %q", ErrMalformed, d)
		}
	}
	for d := range l.AppOpens {
		if !d.Valid() {
			return fmt.Errorf("%w: bad app-open date %q", ErrMalformed, d)
		}
	}
	return nil
}

// normalize fills gaps a valid-but-sparse blob can carry: nil maps,
// nil activity slice, an unknown theme (older versions stored none).
func (l *Ledger) normalize() {
	if l.Activities == nil {
		l.Activities = []string{}
	}
	if l.DailyRecords == nil {
		l.DailyRecords = make(map[DateKey]DailyRecord)
	}
	if l.AppOpens == nil {
		l.AppOpens = make(map[DateKey]bool)
	}
	if l.Theme != ThemeLight && l.Theme != ThemeDark {
		l.Theme = ThemeLight
	}
}
