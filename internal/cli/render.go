package cli

import (
	"fmt"
	"strings"

	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the lipgloss colors used by plain CLI output. Two
// palettes mirror the ledger's light/dark theme.
type Palette struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Dim    lipgloss.Color
	Accent lipgloss.Color
	Green  lipgloss.Color
	Orange lipgloss.Color
	Red    lipgloss.Color
}

var darkPalette = Palette{
	Text:   lipgloss.Color("#FFFCF0"),
	Muted:  lipgloss.Color("#878580"),
	Dim:    lipgloss.Color("#575653"),
	Accent: lipgloss.Color("#3AA99F"),
	Green:  lipgloss.Color("#879A39"),
	Orange: lipgloss.Color("#DA702C"),
	Red:    lipgloss.Color("#D14D41"),
}

var lightPalette = Palette{
	Text:   lipgloss.Color("#100F0F"),
	Muted:  lipgloss.Color("#6F6E69"),
	Dim:    lipgloss.Color("#B7B5AC"),
	Accent: lipgloss.Color("#24837B"),
	Green:  lipgloss.Color("#66800B"),
	Orange: lipgloss.Color("#BC5215"),
	Red:    lipgloss.Color("#AF3029"),
}

var (
	active = lightPalette

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(active.Text).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(active.Accent)
	valueStyle  = lipgloss.NewStyle().Foreground(active.Text)
	mutedStyle  = lipgloss.NewStyle().Foreground(active.Muted)
	dimStyle    = lipgloss.NewStyle().Foreground(active.Dim)
	doneStyle   = lipgloss.NewStyle().Foreground(active.Green)
	missStyle   = lipgloss.NewStyle().Foreground(active.Red)
)

// ApplyTheme switches the CLI palette to match the ledger theme.
func ApplyTheme(t model.Theme) {
	if t == model.ThemeDark {
		active = darkPalette
	} else {
		active = lightPalette
	}
	titleStyle = titleStyle.Foreground(active.Text)
	headerStyle = headerStyle.Foreground(active.Accent)
	valueStyle = valueStyle.Foreground(active.Text)
	mutedStyle = mutedStyle.Foreground(active.Muted)
	dimStyle = dimStyle.Foreground(active.Dim)
	doneStyle = doneStyle.Foreground(active.Green)
	missStyle = missStyle.Foreground(active.Red)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(active.Dim).
		Width(45).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row of
// the single cell "---" renders as a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if lipgloss.Width(h) > widths[i] {
			widths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			// Right-align all columns except the first.
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderChecklist renders a day snapshot as an indented checklist.
func RenderChecklist(snap stats.DaySnapshot) string {
	var b strings.Builder
	for _, a := range snap.Activities {
		glyph := StatusGlyph(a.Status)
		switch a.Status {
		case stats.StatusCompleted:
			b.WriteString(fmt.Sprintf("  %s %s\n", doneStyle.Render(glyph), valueStyle.Render(a.Name)))
		case stats.StatusTrackedIncomplete:
			b.WriteString(fmt.Sprintf("  %s %s\n", missStyle.Render(glyph), valueStyle.Render(a.Name)))
		default:
			b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render(glyph), mutedStyle.Render(a.Name)))
		}
	}
	return b.String()
}

// RenderProgressBar renders a simple text progress bar for completion
// counts.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", mutedStyle.Render(bar), current, total)
}

// RenderMonthCalendar renders a month of day snapshots as a calendar
// grid. Each cell shows the day number colored by completion level;
// today is bracketed.
func RenderMonthCalendar(snaps []stats.DaySnapshot, today model.DateKey) string {
	if len(snaps) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("  ")
	for wd := 0; wd < 7; wd++ {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%4s", FormatDayOfWeek(wd))))
	}
	b.WriteString("\n  ")

	first := snaps[0].Date.Time()
	offset := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", offset))

	col := offset
	for _, snap := range snaps {
		cell := fmt.Sprintf("%3d", snap.Date.Time().Day())
		if snap.Date == today {
			cell = fmt.Sprintf("[%2d]", snap.Date.Time().Day())
		} else {
			cell += " "
		}

		style := dimStyle
		switch {
		case snap.TotalCount == 0 || snap.CompletedCount == 0 && !hasTracked(snap):
			style = dimStyle
		case snap.Percentage == 100:
			style = doneStyle
		case snap.Percentage > 0:
			style = lipgloss.NewStyle().Foreground(active.Orange)
		default:
			style = missStyle
		}
		b.WriteString(style.Render(cell))

		col++
		if col == 7 {
			col = 0
			b.WriteString("\n  ")
		}
	}
	b.WriteString("\n")

	return b.String()
}

func hasTracked(snap stats.DaySnapshot) bool {
	for _, a := range snap.Activities {
		if a.Status != stats.StatusUntracked {
			return true
		}
	}
	return false
}
