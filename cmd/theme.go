package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between light and dark theme",
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, _ []string) error {
	svc, _, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	led, err := svc.ToggleTheme()
	if err != nil {
		return err
	}

	fmt.Printf("  Theme: %s\n", led.Theme)
	return nil
}
