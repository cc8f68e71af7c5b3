package tui

import (
	"github.com/tallydev/tally/internal/config"
	"github.com/tallydev/tally/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the answers of the first-run setup form.
type setupValues struct {
	Theme       string
	AutoRefresh bool
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet.
func newSetupForm(vals *setupValues) *huh.Form {
	vals.Theme = theme.Active.Name
	vals.AutoRefresh = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tally!").
				Description("A couple of questions and you're set.\nRun `tally setup` anytime to reconfigure."),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Light (default)", "light"),
					huh.NewOption("Dark", "dark"),
				).
				Value(&vals.Theme),

			huh.NewConfirm().
				Title("Auto-refresh the dashboard?").
				Description("Reloads the ledger every 30s and rolls the day over at midnight.").
				Value(&vals.AutoRefresh),
		),
	)
}

// saveSetupConfig persists the wizard answers and returns the updated
// config. Save errors are ignored; the answers still apply for this
// session.
func (a *App) saveSetupConfig() config.Config {
	cfg, _ := config.Load()

	cfg.Appearance.Theme = a.setupVals.Theme
	cfg.TUI.AutoRefresh = a.setupVals.AutoRefresh
	theme.SetActive(cfg.Appearance.Theme)

	_ = config.Save(cfg)
	return cfg
}
