package stats

import (
	"math"
	"time"

	"github.com/tallydev/tally/internal/model"
)

// ActivityStatus is the per-activity completion state for one date.
type ActivityStatus int

// Status values, in display order.
const (
	StatusUntracked ActivityStatus = iota
	StatusTrackedIncomplete
	StatusCompleted
)

// ActivityState pairs an activity name with its status for one date.
type ActivityState struct {
	Name   string
	Status ActivityStatus
}

// DaySnapshot is the completion picture of a single date, used by
// detail and calendar views.
type DaySnapshot struct {
	Date           model.DateKey
	CompletedCount int
	TotalCount     int
	Percentage     int
	Activities     []ActivityState
}

// SnapshotDay derives the per-activity completion snapshot for date.
// Activities keep ledger insertion order.
func SnapshotDay(date model.DateKey, l *model.Ledger) DaySnapshot {
	snap := DaySnapshot{
		Date:       date,
		TotalCount: len(l.Activities),
		Activities: make([]ActivityState, 0, len(l.Activities)),
	}

	rec := l.DailyRecords[date]
	for _, a := range l.Activities {
		status := StatusUntracked
		if v, ok := rec[a]; ok {
			if v {
				status = StatusCompleted
				snap.CompletedCount++
			} else {
				status = StatusTrackedIncomplete
			}
		}
		snap.Activities = append(snap.Activities, ActivityState{Name: a, Status: status})
	}

	if snap.TotalCount > 0 {
		snap.Percentage = int(math.Round(float64(snap.CompletedCount) / float64(snap.TotalCount) * 100))
	}
	return snap
}

// SnapshotMonth returns one DaySnapshot per day of the given month, in
// calendar order. It drives the month heatmap.
func SnapshotMonth(year int, month time.Month, l *model.Ledger) []DaySnapshot {
	days := MonthRange(year, month)
	snaps := make([]DaySnapshot, len(days))
	for i, d := range days {
		snaps[i] = SnapshotDay(d, l)
	}
	return snaps
}
