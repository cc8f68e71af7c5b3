package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/tallydev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HeatmapDay is one cell of a month heatmap.
type HeatmapDay struct {
	Day     int
	Pct     int  // completion percentage 0-100
	Tracked bool // false when nothing was recorded that day
}

// MonthHeatmap renders a calendar-shaped completion heatmap. days must
// be ordered day 1..n for the given month. today highlights the current
// day cell (0 to disable).
func MonthHeatmap(year int, month time.Month, days []HeatmapDay, today int) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	todayStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(headStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Monday-first column offset
	offset := (int(first.Weekday()) + 6) % 7
	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString("   ")
		col++
	}

	for _, d := range days {
		cell := fmt.Sprintf("%2d", d.Day)
		switch {
		case d.Day == today:
			b.WriteString(todayStyle.Render(cell))
		case !d.Tracked:
			b.WriteString(dimStyle.Render(cell))
		default:
			color := lipgloss.Color(ColorForPct(float64(d.Pct) / 100))
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(cell))
		}
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}

	return strings.TrimRight(b.String(), " \n")
}

// HeatmapLegend renders the color key shown under a heatmap.
func HeatmapLegend() string {
	t := theme.Active
	entry := func(c lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(c).Render("■") + " " +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	}
	return entry(t.Green, "80%+") + "  " +
		entry(t.Yellow, "50-79%") + "  " +
		entry(t.Orange, "1-49%") + "  " +
		entry(t.Red, "0%") + "  " +
		entry(t.TextDim, "untracked")
}
