package cli

import (
	"strings"
	"testing"

	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"
)

func TestFormatStreak(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{12, "12 days"},
	}
	for _, tc := range cases {
		if got := FormatStreak(tc.n); got != tc.want {
			t.Fatalf("FormatStreak(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-06-15"); got != "Sat, Jun 15 2024" {
		t.Fatalf("FormatDate = %q", got)
	}
	// Unparseable keys fall back to the raw string.
	if got := FormatDate("garbage"); got != "garbage" {
		t.Fatalf("FormatDate(garbage) = %q", got)
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Fatalf("FormatDayOfWeek(0) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Fatalf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}

func TestStatusGlyph(t *testing.T) {
	if StatusGlyph(stats.StatusCompleted) != "✓" ||
		StatusGlyph(stats.StatusTrackedIncomplete) != "✗" ||
		StatusGlyph(stats.StatusUntracked) != "·" {
		t.Fatal("glyph mapping wrong")
	}
}

func TestRenderTableContainsCells(t *testing.T) {
	ApplyTheme(model.ThemeLight)

	out := RenderTable(Table{
		Title:   "Habits",
		Headers: []string{"#", "Habit"},
		Rows: [][]string{
			{"1", "Read"},
			{"---"},
			{"2", "Run"},
		},
	})

	for _, want := range []string{"Habits", "Read", "Run"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderProgressBarBounds(t *testing.T) {
	ApplyTheme(model.ThemeDark)

	full := RenderProgressBar(4, 4, 20)
	if !strings.Contains(full, "█") {
		t.Fatal("full bar has no filled cells")
	}
	empty := RenderProgressBar(0, 4, 20)
	if strings.Contains(empty, "█") {
		t.Fatal("empty bar has filled cells")
	}
	// Zero total must not panic or divide by zero.
	_ = RenderProgressBar(0, 0, 20)
}
