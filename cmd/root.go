// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/config"
	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagDate    string
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Daily habit tracker",
	Long:  "Track daily habits from the terminal: completion checklists, streaks, and success rates.",
	RunE:  runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Ledger data directory (default: XDG data home)")
}

// openService opens the ledger store and wraps it in a service. The
// returned cleanup closes the store.
func openService() (*ledger.Service, func(), error) {
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, nil, err
	}

	svc := ledger.NewService(st)
	return svc, func() { _ = st.Close() }, nil
}

// openLedger is the shared load path: open the store, mark today's
// app-open, and apply the stored theme to CLI output.
func openLedger() (*ledger.Service, *model.Ledger, func(), error) {
	svc, cleanup, err := openService()
	if err != nil {
		return nil, nil, nil, err
	}

	led, err := svc.Open()
	if err != nil {
		if led == nil {
			cleanup()
			return nil, nil, nil, err
		}
		// Save failed; the in-memory state is still usable.
		fmt.Fprintf(os.Stderr, "  Warning: %v (changes may not persist)\n", err)
	}

	cli.ApplyTheme(led.Theme)
	return svc, led, cleanup, nil
}

// targetDate resolves the --date flag, defaulting to today.
func targetDate(svc *ledger.Service) (model.DateKey, error) {
	if flagDate == "" {
		return svc.Today(), nil
	}
	d := model.DateKey(flagDate)
	if !d.Valid() {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flagDate)
	}
	return d, nil
}
