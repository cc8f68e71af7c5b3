package tui

import (
	"fmt"
	"strings"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"
	"github.com/tallydev/tally/internal/tui/components"
	"github.com/tallydev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStatsTab(cw int) string {
	today := a.led.LastResetDate
	now := today.Time()

	week := stats.ComputeSuccess(stats.WeekRange(today), a.led)
	month := stats.ComputeSuccess(stats.MonthRange(now.Year(), now.Month()), a.led)

	var b strings.Builder

	// Row 1: Aggregate cards
	cards := []struct{ Label, Value, Detail string }{
		{"Week", cli.FormatPercent(week.Overall), fmt.Sprintf("%d perfect days", week.CompletedDays)},
		{"Month", cli.FormatPercent(month.Overall), fmt.Sprintf("%d tracked days", month.ContributingDays)},
		{"Streak", cli.FormatStreak(a.led.CurrentStreak), "best " + cli.FormatStreak(a.led.BestStreak)},
		{"Habits", fmt.Sprintf("%d", len(a.led.Activities)), fmt.Sprintf("of %d max", model.MaxActivities)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Last 7 days
	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Last 7 Days", a.renderWeekBreakdown(today, innerW), cw))
	b.WriteString("\n")

	// Row 3: Per-habit completion over the last 30 days
	if len(a.led.Activities) > 0 {
		b.WriteString(components.ContentCard("Habits (30d)", a.renderHabitRates(today, innerW), cw))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderWeekBreakdown(today model.DateKey, innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	barW := innerW - 16
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, d := range stats.WeekRange(today) {
		label := cli.FormatDayOfWeek(int(d.Time().Weekday()))
		snap := stats.SnapshotDay(d, a.led)

		if snap.TotalCount == 0 || !daySees(snap) {
			b.WriteString(dayStyle.Render(fmt.Sprintf("%-4s", label)))
			b.WriteString(dimStyle.Render(" no data"))
			b.WriteString("\n")
			continue
		}

		pct := float64(snap.CompletedCount) / float64(snap.TotalCount)
		b.WriteString(dayStyle.Render(fmt.Sprintf("%-4s", label)))
		b.WriteString(" ")
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderHabitRates(today model.DateKey, innerW int) string {
	labelW := 0
	for _, name := range a.led.Activities {
		if len(name) > labelW {
			labelW = len(name)
		}
	}
	if labelW > 24 {
		labelW = 24
	}

	barW := innerW - labelW - 8
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, name := range a.led.Activities {
		done, tracked := completionOver(a.led, name, today, 30)
		pct := 0.0
		if tracked > 0 {
			pct = float64(done) / float64(tracked)
		}
		b.WriteString(components.HabitBar(truncStr(name, labelW), pct, labelW, barW))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// daySees reports whether any activity was tracked on the snapshot's
// date.
func daySees(snap stats.DaySnapshot) bool {
	for _, st := range snap.Activities {
		if st.Status != stats.StatusUntracked {
			return true
		}
	}
	return false
}

// completionOver counts completions of name over the days window
// ending at today. tracked counts days where the habit had an explicit
// record.
func completionOver(l *model.Ledger, name string, today model.DateKey, days int) (done, tracked int) {
	for i := 0; i < days; i++ {
		rec, ok := l.DailyRecords[today.AddDays(-i)]
		if !ok {
			continue
		}
		v, ok := rec[name]
		if !ok {
			continue
		}
		tracked++
		if v {
			done++
		}
	}
	return done, tracked
}
