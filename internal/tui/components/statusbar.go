package components

import (
	"fmt"

	"github.com/tallydev/tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. status is a transient
// message shown on the left after an action; streak appears on the right.
func RenderStatusBar(width int, status string, streak int, saveWarn bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if status != "" {
		left += "  " + lipgloss.NewStyle().Foreground(t.Accent).Render(status)
	}
	if saveWarn {
		left += "  " + lipgloss.NewStyle().Foreground(t.Orange).Render("! not saved")
	}

	right := ""
	if streak > 0 {
		right = fmt.Sprintf("streak %d ", streak)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
