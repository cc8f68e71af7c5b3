package cmd

import (
	"fmt"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/stats"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's checklist and streaks",
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
	svc, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	today := svc.Today()
	snap := stats.SnapshotDay(today, led)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TALLY  %s", cli.FormatDate(today))))
	fmt.Println()

	if len(led.Activities) == 0 {
		fmt.Println("  No habits yet. Add one with `tally add \"Read\"`.")
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderChecklist(snap))
	fmt.Println()
	fmt.Printf("  %s  %s\n",
		cli.RenderProgressBar(snap.CompletedCount, snap.TotalCount, 20),
		cli.FormatPercent(snap.Percentage),
	)
	fmt.Println()
	fmt.Printf("  Streak: %s (best %s)\n",
		cli.FormatStreak(led.CurrentStreak),
		cli.FormatStreak(led.BestStreak),
	)
	fmt.Println()

	return nil
}
