package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a habit and its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	svc, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	name := args[0]
	if !led.HasActivity(name) {
		fmt.Printf("  No habit named %q, nothing removed.\n", name)
		return nil
	}

	if _, err := svc.DeleteActivity(name); err != nil {
		return err
	}

	fmt.Printf("  Removed %q and purged its history.\n", name)
	return nil
}
