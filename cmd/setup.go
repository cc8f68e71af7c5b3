package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tallydev/tally/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to tally!")
	fmt.Println()

	// 1. Theme
	fmt.Println("  1. Default theme")
	fmt.Println("     (1) light [default]")
	fmt.Println("     (2) dark")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "dark"
	default:
		cfg.Appearance.Theme = "light"
	}
	fmt.Println()

	// 2. Data directory
	fmt.Println("  2. Data directory")
	fmt.Printf("     Current: %s\n", config.DataDir(cfg))
	fmt.Print("     > (leave blank to keep) ")
	dir, _ := reader.ReadString('\n')
	if dir = strings.TrimSpace(dir); dir != "" {
		cfg.General.DataDir = dir
	}
	fmt.Println()

	// 3. TUI auto-refresh
	fmt.Println("  3. Auto-refresh the dashboard?")
	fmt.Println("     (1) yes [default]")
	fmt.Println("     (2) no")
	fmt.Print("     > ")
	refreshChoice, _ := reader.ReadString('\n')
	cfg.TUI.AutoRefresh = strings.TrimSpace(refreshChoice) != "2"

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `tally setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
