package stats

import (
	"testing"
	"time"

	"github.com/tallydev/tally/internal/model"
)

func TestSnapshotDayStatuses(t *testing.T) {
	l := ledgerWith("Read", "Run", "Meditate")
	l.DailyRecords["2024-06-15"] = model.DailyRecord{"Read": true, "Run": false}

	snap := SnapshotDay("2024-06-15", l)
	if snap.CompletedCount != 1 || snap.TotalCount != 3 {
		t.Fatalf("counts = %d/%d, want 1/3", snap.CompletedCount, snap.TotalCount)
	}
	if snap.Percentage != 33 {
		t.Fatalf("Percentage = %d, want 33", snap.Percentage)
	}

	want := []ActivityStatus{StatusCompleted, StatusTrackedIncomplete, StatusUntracked}
	for i, st := range snap.Activities {
		if st.Status != want[i] {
			t.Fatalf("activity %d status = %d, want %d", i, st.Status, want[i])
		}
	}
	// Ledger insertion order must be preserved.
	if snap.Activities[0].Name != "Read" || snap.Activities[2].Name != "Meditate" {
		t.Fatalf("activity order = %v", snap.Activities)
	}
}

func TestSnapshotDayPerfect(t *testing.T) {
	l := ledgerWith("Read", "Run")
	l.DailyRecords["2024-06-15"] = model.DailyRecord{"Read": true, "Run": true}

	snap := SnapshotDay("2024-06-15", l)
	if snap.CompletedCount != 2 || snap.TotalCount != 2 {
		t.Fatalf("counts = %d/%d, want 2/2", snap.CompletedCount, snap.TotalCount)
	}
	if snap.Percentage != 100 {
		t.Fatalf("Percentage = %d, want 100", snap.Percentage)
	}
	for _, st := range snap.Activities {
		if st.Status != StatusCompleted {
			t.Fatalf("%s status = %d, want completed", st.Name, st.Status)
		}
	}
}

func TestSnapshotDayNoActivities(t *testing.T) {
	snap := SnapshotDay("2024-06-15", ledgerWith())
	if snap.Percentage != 0 || snap.TotalCount != 0 {
		t.Fatalf("snapshot = %+v, want zeros", snap)
	}
}

func TestSnapshotMonthLength(t *testing.T) {
	snaps := SnapshotMonth(2024, time.April, ledgerWith("Read"))
	if len(snaps) != 30 {
		t.Fatalf("len = %d, want 30", len(snaps))
	}
	if snaps[0].Date != "2024-04-01" || snaps[29].Date != "2024-04-30" {
		t.Fatalf("dates = %v..%v", snaps[0].Date, snaps[29].Date)
	}
}
