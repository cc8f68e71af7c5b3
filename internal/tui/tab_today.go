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

func (a App) renderTodayTab(cw int) string {
	t := theme.Active
	today := a.led.LastResetDate
	snap := stats.SnapshotDay(today, a.led)
	week := stats.ComputeSuccess(stats.WeekRange(today), a.led)

	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Detail string }{
		{"Today", cli.FormatFraction(snap.CompletedCount, snap.TotalCount), cli.FormatPercent(snap.Percentage)},
		{"Streak", cli.FormatStreak(a.led.CurrentStreak), "best " + cli.FormatStreak(a.led.BestStreak)},
		{"Week", cli.FormatPercent(week.Overall), fmt.Sprintf("%d perfect days", week.CompletedDays)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Habit checklist
	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		cli.FormatDate(today),
		a.renderChecklist(snap, innerW),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Progress bar
	if snap.TotalCount > 0 {
		barW := innerW - 6
		if barW > 50 {
			barW = 50
		}
		pct := float64(snap.CompletedCount) / float64(snap.TotalCount)
		b.WriteString(components.ContentCard("", components.ProgressBar(pct, barW), cw))
		b.WriteString("\n")
	}

	if a.confirmDelete != "" {
		warn := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		b.WriteString(warn.Render(fmt.Sprintf(" Delete %q and its history? [y/N]", a.confirmDelete)))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderChecklist(snap stats.DaySnapshot, innerW int) string {
	t := theme.Active

	doneStyle := lipgloss.NewStyle().Foreground(t.Green)
	pendingStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	if len(snap.Activities) == 0 && !a.adding {
		b.WriteString(hintStyle.Render("No habits yet. Press [a] to add one."))
		return b.String()
	}

	for i, st := range snap.Activities {
		marker := "  "
		if i == a.cursor {
			marker = cursorStyle.Render("> ")
		}

		name := truncStr(st.Name, innerW-8)
		var line string
		if st.Status == stats.StatusCompleted {
			line = doneStyle.Render("[x] " + name)
		} else {
			line = pendingStyle.Render("[ ] " + name)
		}

		b.WriteString(marker + line)
		b.WriteString("\n")
	}

	if a.adding {
		b.WriteString("\n  ")
		b.WriteString(a.addInput.View())
		b.WriteString("\n  ")
		b.WriteString(hintStyle.Render("Enter to add, Esc to cancel"))
	}

	return strings.TrimRight(b.String(), "\n")
}
