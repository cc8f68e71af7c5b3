package cmd

import (
	"fmt"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/stats"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Calendar view of a month's completion",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, args []string) error {
	svc, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	today := svc.Today()
	year, month := today.Time().Year(), today.Time().Month()
	if len(args) == 1 {
		year, month, err = monthOf(args[0])
		if err != nil {
			return err
		}
	}

	snaps := stats.SnapshotMonth(year, month, led)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CALENDAR  %s %d", month, year)))
	fmt.Println()
	fmt.Print(cli.RenderMonthCalendar(snaps, today))
	fmt.Println()
	fmt.Println("  ✓ all done   ~ partial   ✗ none   · untracked")
	fmt.Println()

	return nil
}
