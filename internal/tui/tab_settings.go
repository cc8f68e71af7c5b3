package tui

import (
	"fmt"
	"strings"

	"github.com/tallydev/tally/internal/config"
	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/tui/components"
	"github.com/tallydev/tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const settingsFieldCount = 2

// settingsActivate applies the setting under the cursor.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	switch a.settingsCursor {
	case 0: // theme
		return a, mutateCmd(a.dbPath, "", func(svc *ledger.Service) (*model.Ledger, error) {
			return svc.ToggleTheme()
		})
	case 1: // auto-refresh
		a.autoRefresh = !a.autoRefresh
		a.cfg.TUI.AutoRefresh = a.autoRefresh
		_ = config.Save(a.cfg)
		return a, nil
	}
	return a, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	fields := []struct{ label, value string }{
		{"Theme", string(a.led.Theme)},
		{"Auto-refresh", onOff(a.autoRefresh)},
	}

	var body strings.Builder
	for i, f := range fields {
		marker := "  "
		if i == a.settingsCursor {
			marker = cursorStyle.Render("> ")
		}
		body.WriteString(marker)
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", f.label)))
		body.WriteString(valueStyle.Render(f.value))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("  j/k to select, Enter to change"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", body.String(), cw))
	b.WriteString("\n")

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config   "))
	info.WriteString(valueStyle.Render(config.Path()))
	info.WriteString("\n")
	info.WriteString(labelStyle.Render("Database "))
	info.WriteString(valueStyle.Render(a.dbPath))
	info.WriteString("\n")
	info.WriteString(labelStyle.Render("Refresh  "))
	info.WriteString(valueStyle.Render(fmt.Sprintf("every %s", a.refreshInterval)))
	b.WriteString(components.ContentCard("Paths", info.String(), cw))
	b.WriteString("\n")

	return b.String()
}
