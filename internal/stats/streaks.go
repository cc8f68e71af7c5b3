// Package stats is the pure derivation engine over the habit ledger:
// streak computation, success-percentage aggregation, and per-day
// completion snapshots. Every function is deterministic in its inputs
// and safe to call at arbitrary frequency.
package stats

import (
	"sort"

	"github.com/tallydev/tally/internal/model"
)

// Streaks holds the derived consecutive-day app-open streaks.
type Streaks struct {
	Current int
	Best    int
}

// RecomputeStreaks derives current and best streaks from the app-open
// log and today's date.
//
// The current streak anchors at today if present, otherwise at
// yesterday (an open yesterday keeps the streak alive until today's
// first open), then walks backward day by day until the first gap.
// The best streak is the longest run of consecutive dates in the log,
// maxed with the current streak so an active record-setting streak
// counts before its last day elapses.
func RecomputeStreaks(opens map[model.DateKey]bool, today model.DateKey) Streaks {
	if len(opens) == 0 {
		return Streaks{}
	}

	anchor := today
	if !opens[anchor] {
		anchor = today.AddDays(-1)
	}

	current := 0
	if opens[anchor] {
		current = 1
		for d := anchor.AddDays(-1); opens[d]; d = d.AddDays(-1) {
			current++
		}
	}

	best := 0
	run := 0
	var prev model.DateKey
	for _, d := range sortedOpens(opens) {
		if run > 0 && d.NextDayOf(prev) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = d
	}
	if current > best {
		best = current
	}

	return Streaks{Current: current, Best: best}
}

func sortedOpens(opens map[model.DateKey]bool) []model.DateKey {
	dates := make([]model.DateKey, 0, len(opens))
	for d := range opens {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return dates
}
