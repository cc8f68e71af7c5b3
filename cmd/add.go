package cmd

import (
	"errors"
	"fmt"

	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/model"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	led, err := svc.AddActivity(args[0])
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidName):
			return fmt.Errorf("invalid name: must be 1-%d characters after trimming", model.MaxNameLen)
		case errors.Is(err, ledger.ErrDuplicateName):
			return fmt.Errorf("habit %q already exists", ledger.SanitizeName(args[0]))
		case errors.Is(err, ledger.ErrLimitExceeded):
			return fmt.Errorf("habit limit reached (%d)", model.MaxActivities)
		}
		return err
	}

	fmt.Printf("  Added %q (%d/%d habits)\n",
		led.Activities[len(led.Activities)-1], len(led.Activities), model.MaxActivities)
	return nil
}
