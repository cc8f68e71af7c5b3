package stats

import (
	"math"
	"time"

	"github.com/tallydev/tally/internal/model"
)

// Success holds aggregate completion results over a date range.
type Success struct {
	// CompletedDays counts dates where every activity was completed.
	CompletedDays int
	// Overall is the mean of per-day completion percentages over
	// contributing days, rounded to the nearest integer.
	Overall int
	// ContributingDays counts dates with at least one tracked activity.
	ContributingDays int
}

// ComputeSuccess aggregates completion over dateRange. A date
// contributes only if its record explicitly tracks at least one
// current activity; untouched days and days with no activities defined
// are excluded so they cannot dilute the average. An empty activity
// list or empty range yields the zero Success, never a division by
// zero.
func ComputeSuccess(dateRange []model.DateKey, l *model.Ledger) Success {
	if len(dateRange) == 0 || len(l.Activities) == 0 {
		return Success{}
	}

	var s Success
	total := len(l.Activities)
	sumPct := 0.0

	for _, date := range dateRange {
		rec := l.DailyRecords[date]
		done := 0
		hasData := false
		for _, a := range l.Activities {
			v, ok := rec[a]
			if !ok {
				continue
			}
			hasData = true
			if v {
				done++
			}
		}
		if !hasData {
			continue
		}
		s.ContributingDays++
		sumPct += float64(done) / float64(total) * 100
		if done == total {
			s.CompletedDays++
		}
	}

	if s.ContributingDays > 0 {
		s.Overall = int(math.Round(sumPct / float64(s.ContributingDays)))
	}
	return s
}

// WeekRange returns the 7 calendar days ending at today, inclusive.
func WeekRange(today model.DateKey) []model.DateKey {
	days := make([]model.DateKey, 7)
	for i := range days {
		days[i] = today.AddDays(i - 6)
	}
	return days
}

// MonthRange returns every calendar day of the given month, first
// through last, regardless of whether a day is still in the future.
func MonthRange(year int, month time.Month) []model.DateKey {
	n := model.DaysIn(year, month)
	days := make([]model.DateKey, n)
	for i := range days {
		days[i] = model.DateKeyOf(time.Date(year, month, i+1, 0, 0, 0, 0, time.Local))
	}
	return days
}
