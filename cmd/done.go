package cmd

import (
	"errors"
	"fmt"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/ledger"
	"github.com/tallydev/tally/internal/stats"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <name>",
	Short: "Toggle a habit's completion for a date",
	Long:  "Toggle a habit's completion flag. Defaults to today; pass --date for past days.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	doneCmd.Flags().StringVar(&flagDate, "date", "", "Date to toggle (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(doneCmd)
}

func runDone(_ *cobra.Command, args []string) error {
	svc, _, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	date, err := targetDate(svc)
	if err != nil {
		return err
	}

	name := args[0]
	led, err := svc.ToggleActivity(name, date)
	if err != nil {
		if errors.Is(err, ledger.ErrUnknownActivity) {
			return fmt.Errorf("no habit named %q, see `tally list`", name)
		}
		return err
	}

	snap := stats.SnapshotDay(date, led)
	state := "not done"
	if led.Record(date)[name] {
		state = "done"
	}
	fmt.Printf("  %s: %s (%s on %s)\n", name, state,
		cli.FormatFraction(snap.CompletedCount, snap.TotalCount), date)
	return nil
}
