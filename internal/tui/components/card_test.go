package components

import (
	"strings"
	"testing"
	"time"
)

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		widths := LayoutRow(100, n)
		if len(widths) != n {
			t.Fatalf("LayoutRow(100, %d) len = %d", n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Fatalf("LayoutRow(100, %d) sums to %d, want 100", n, sum)
		}
	}

	// First items absorb the remainder.
	widths := LayoutRow(10, 3)
	if widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}

	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should return nil")
	}
}

func TestCardInnerWidthFloor(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Fatalf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Fatalf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if TabIdxByKey('z') != -1 {
		t.Fatal("unknown key should map to -1")
	}
}

func TestMonthHeatmapShape(t *testing.T) {
	days := make([]HeatmapDay, 30)
	for i := range days {
		days[i] = HeatmapDay{Day: i + 1, Pct: (i * 7) % 101, Tracked: i%3 != 0}
	}

	out := MonthHeatmap(2024, time.June, days, 15)
	lines := strings.Split(out, "\n")

	// Header + 5 calendar rows: June 2024 starts on a Saturday, so the
	// 5 leading blanks plus 30 days fill exactly five weeks.
	if len(lines) != 6 {
		t.Fatalf("heatmap has %d lines, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Mo") || !strings.Contains(lines[0], "Su") {
		t.Fatalf("missing weekday header: %q", lines[0])
	}
	if !strings.Contains(out, "30") {
		t.Fatal("last day missing from grid")
	}
}
