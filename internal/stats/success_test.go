package stats

import (
	"testing"
	"time"

	"github.com/tallydev/tally/internal/model"
)

func ledgerWith(activities ...string) *model.Ledger {
	l := model.New("2024-06-15")
	l.Activities = activities
	return l
}

func TestComputeSuccessSkipsUntouchedDays(t *testing.T) {
	l := ledgerWith("Read", "Run")
	l.DailyRecords["2024-06-14"] = model.DailyRecord{"Read": true, "Run": true}
	l.DailyRecords["2024-06-15"] = model.DailyRecord{"Read": true, "Run": false}

	s := ComputeSuccess(WeekRange("2024-06-15"), l)
	if s.ContributingDays != 2 {
		t.Fatalf("ContributingDays = %d, want 2", s.ContributingDays)
	}
	// (100 + 50) / 2
	if s.Overall != 75 {
		t.Fatalf("Overall = %d, want 75", s.Overall)
	}
	if s.CompletedDays != 1 {
		t.Fatalf("CompletedDays = %d, want 1", s.CompletedDays)
	}
}

func TestComputeSuccessIgnoresStaleRecordKeys(t *testing.T) {
	// A record for an activity that no longer exists must not count.
	l := ledgerWith("Read")
	l.DailyRecords["2024-06-15"] = model.DailyRecord{"Ghost": true}

	s := ComputeSuccess(WeekRange("2024-06-15"), l)
	if s.ContributingDays != 0 {
		t.Fatalf("ContributingDays = %d, want 0", s.ContributingDays)
	}
	if s.Overall != 0 {
		t.Fatalf("Overall = %d, want 0", s.Overall)
	}
}

func TestComputeSuccessRoundsMean(t *testing.T) {
	l := ledgerWith("A", "B", "C")
	l.DailyRecords["2024-06-14"] = model.DailyRecord{"A": true, "B": false, "C": false}
	l.DailyRecords["2024-06-15"] = model.DailyRecord{"A": true, "B": true, "C": false}

	// (33.33 + 66.67) / 2 = 50
	s := ComputeSuccess(WeekRange("2024-06-15"), l)
	if s.Overall != 50 {
		t.Fatalf("Overall = %d, want 50", s.Overall)
	}
}

func TestComputeSuccessEmptyInputs(t *testing.T) {
	if s := ComputeSuccess(nil, ledgerWith("Read")); s != (Success{}) {
		t.Fatalf("empty range = %+v, want zero", s)
	}
	if s := ComputeSuccess(WeekRange("2024-06-15"), ledgerWith()); s != (Success{}) {
		t.Fatalf("no activities = %+v, want zero", s)
	}
}

func TestWeekRangeEndsAtToday(t *testing.T) {
	days := WeekRange("2024-06-15")
	if len(days) != 7 {
		t.Fatalf("len = %d, want 7", len(days))
	}
	if days[0] != "2024-06-09" || days[6] != "2024-06-15" {
		t.Fatalf("range = %v..%v, want 2024-06-09..2024-06-15", days[0], days[6])
	}
}

func TestMonthRangeCoversWholeMonth(t *testing.T) {
	days := MonthRange(2024, time.February)
	if len(days) != 29 {
		t.Fatalf("len = %d, want 29 (leap year)", len(days))
	}
	if days[0] != "2024-02-01" || days[28] != "2024-02-29" {
		t.Fatalf("range = %v..%v", days[0], days[28])
	}
}
