package cmd

import (
	"fmt"

	"github.com/tallydev/tally/internal/cli"
	"github.com/tallydev/tally/internal/model"
	"github.com/tallydev/tally/internal/stats"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's status",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	svc, led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(led.Activities) == 0 {
		fmt.Println("  No habits yet. Add one with `tally add \"Read\"`.")
		return nil
	}

	snap := stats.SnapshotDay(svc.Today(), led)

	rows := make([][]string, 0, len(snap.Activities))
	for i, a := range snap.Activities {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			a.Name,
			cli.StatusGlyph(a.Status),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Habits (%d/%d)", len(led.Activities), model.MaxActivities),
		Headers: []string{"#", "Habit", "Today"},
		Rows:    rows,
	}))

	return nil
}
