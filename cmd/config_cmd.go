package cmd

import (
	"fmt"

	"github.com/tallydev/tally/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data dir: %s\n", config.DataDir(cfg))
	fmt.Printf("    Ledger:   %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Default theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [TUI]")
	fmt.Printf("    Refresh interval: %ds\n", cfg.TUI.RefreshIntervalSec)
	fmt.Printf("    Auto refresh:     %v\n", cfg.TUI.AutoRefresh)
	fmt.Println()

	fmt.Println("  [Watch]")
	fmt.Printf("    Interval: %ds\n", cfg.Watch.IntervalSec)
	if cfg.Watch.Addr != "" {
		fmt.Printf("    Address:  %s\n", cfg.Watch.Addr)
	}
	fmt.Println()

	fmt.Println("  Run `tally setup` to reconfigure.")
	return nil
}
