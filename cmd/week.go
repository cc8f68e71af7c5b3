package cmd

import (
	"fmt"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/stats"

	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Success rate over the last 7 days",
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, _ []string) error {
	svc, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	today := svc.Today()
	days := stats.WeekRange(today)
	success := stats.ComputeSuccess(days, led)

	fmt.Println()
	fmt.Println(cli.RenderTitle("THIS WEEK"))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		snap := stats.SnapshotDay(d, led)
		rows = append(rows, []string{
			string(d),
			cli.FormatDayOfWeek(int(d.Time().Weekday())),
			cli.FormatFraction(snap.CompletedCount, snap.TotalCount),
			cli.FormatPercent(snap.Percentage),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Overall", "", fmt.Sprintf("%d perfect", success.CompletedDays), cli.FormatPercent(success.Overall)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Done", "Rate"},
		Rows:    rows,
	}))

	return nil
}
