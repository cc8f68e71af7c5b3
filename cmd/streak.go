package cmd

import (
	"fmt"

	"github.com/tallydev/tally/internal/cli"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and best usage streaks",
	RunE:  runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	_, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Streak", "Length"},
		Rows: [][]string{
			{"Current", cli.FormatStreak(led.CurrentStreak)},
			{"Best", cli.FormatStreak(led.BestStreak)},
			{"Days opened", fmt.Sprintf("%d", len(led.AppOpens))},
		},
	}))

	return nil
}
