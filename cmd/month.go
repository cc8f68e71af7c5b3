package cmd

import (
	"fmt"
	"time"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/stats"

	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Success rate over the current month",
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(_ *cobra.Command, _ []string) error {
	svc, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	now := svc.Today().Time()
	days := stats.MonthRange(now.Year(), now.Month())
	success := stats.ComputeSuccess(days, led)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTH  %s", now.Format("January 2006"))))
	fmt.Println()

	rows := [][]string{
		{"Tracked days", fmt.Sprintf("%d of %d", success.ContributingDays, len(days))},
		{"Perfect days", fmt.Sprintf("%d", success.CompletedDays)},
		{"Overall", cli.FormatPercent(success.Overall)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}

// monthOf parses a "YYYY-MM" argument.
func monthOf(arg string) (int, time.Month, error) {
	t, err := time.ParseInLocation("2006-01", arg, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", arg)
	}
	return t.Year(), t.Month(), nil
}
