package stats

import (
	"testing"

	"github.com/tallydev/tally/internal/model"
)

func opens(dates ...model.DateKey) map[model.DateKey]bool {
	m := make(map[model.DateKey]bool, len(dates))
	for _, d := range dates {
		m[d] = true
	}
	return m
}

func TestRecomputeStreaksConsecutiveRun(t *testing.T) {
	s := RecomputeStreaks(opens("2024-01-01", "2024-01-02", "2024-01-03"), "2024-01-03")
	if s.Current != 3 {
		t.Fatalf("Current = %d, want 3", s.Current)
	}
	if s.Best != 3 {
		t.Fatalf("Best = %d, want 3", s.Best)
	}
}

func TestRecomputeStreaksGapResets(t *testing.T) {
	s := RecomputeStreaks(opens("2024-01-01", "2024-01-03"), "2024-01-03")
	if s.Current != 1 {
		t.Fatalf("Current = %d, want 1", s.Current)
	}
	if s.Best != 1 {
		t.Fatalf("Best = %d, want 1", s.Best)
	}
}

func TestRecomputeStreaksAnchorsAtYesterday(t *testing.T) {
	// Opened through yesterday but not yet today: streak stays alive.
	s := RecomputeStreaks(opens("2024-01-01", "2024-01-02"), "2024-01-03")
	if s.Current != 2 {
		t.Fatalf("Current = %d, want 2", s.Current)
	}
}

func TestRecomputeStreaksDeadAfterTwoDayGap(t *testing.T) {
	s := RecomputeStreaks(opens("2024-01-01", "2024-01-02"), "2024-01-05")
	if s.Current != 0 {
		t.Fatalf("Current = %d, want 0", s.Current)
	}
	if s.Best != 2 {
		t.Fatalf("Best = %d, want 2", s.Best)
	}
}

func TestRecomputeStreaksBestKeepsHistoricalRun(t *testing.T) {
	// A long past run plus a shorter active one.
	s := RecomputeStreaks(opens(
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-10", "2024-01-11",
	), "2024-01-11")
	if s.Current != 2 {
		t.Fatalf("Current = %d, want 2", s.Current)
	}
	if s.Best != 4 {
		t.Fatalf("Best = %d, want 4", s.Best)
	}
}

func TestRecomputeStreaksCrossesMonthBoundary(t *testing.T) {
	s := RecomputeStreaks(opens("2024-02-28", "2024-02-29", "2024-03-01"), "2024-03-01")
	if s.Current != 3 {
		t.Fatalf("Current = %d, want 3", s.Current)
	}
}

func TestRecomputeStreaksIdempotent(t *testing.T) {
	o := opens("2024-01-01", "2024-01-02", "2024-01-03")
	first := RecomputeStreaks(o, "2024-01-03")
	second := RecomputeStreaks(o, "2024-01-03")
	if first != second {
		t.Fatalf("repeated derivation diverged: %+v vs %+v", first, second)
	}
}

func TestRecomputeStreaksEmptyLog(t *testing.T) {
	if s := RecomputeStreaks(nil, "2024-01-01"); s != (Streaks{}) {
		t.Fatalf("empty log = %+v, want zero", s)
	}
}
