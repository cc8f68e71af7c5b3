package tui

import (
	"fmt"
	"strings"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/stats"
	"github.com/tallydev/tally/internal/tui/components"
	"github.com/tallydev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active
	today := a.led.LastResetDate

	snaps := stats.SnapshotMonth(a.calYear, a.calMonth, a.led)
	days := make([]components.HeatmapDay, len(snaps))
	for i, s := range snaps {
		tracked := false
		for _, st := range s.Activities {
			if st.Status != stats.StatusUntracked {
				tracked = true
				break
			}
		}
		days[i] = components.HeatmapDay{Day: i + 1, Pct: s.Percentage, Tracked: tracked}
	}

	todayDay := 0
	tt := today.Time()
	if tt.Year() == a.calYear && tt.Month() == a.calMonth {
		todayDay = tt.Day()
	}

	title := fmt.Sprintf("%s %d", a.calMonth, a.calYear)
	heatmap := components.MonthHeatmap(a.calYear, a.calMonth, days, todayDay)

	month := stats.ComputeSuccess(stats.MonthRange(a.calYear, a.calMonth), a.led)

	var b strings.Builder
	b.WriteString(components.ContentCard(title, heatmap, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("", components.HeatmapLegend(), cw))
	b.WriteString("\n")

	cards := []struct{ Label, Value, Detail string }{
		{"Month", cli.FormatPercent(month.Overall), fmt.Sprintf("%d tracked days", month.ContributingDays)},
		{"Perfect days", fmt.Sprintf("%d", month.CompletedDays), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render(" [ and ] switch months"))

	return b.String()
}
