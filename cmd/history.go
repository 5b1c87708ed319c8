package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymweek/internal/repository"
)

var (
	historyFrom string
	historyTo   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show daily completion summaries over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		end := time.Now()
		start := end.AddDate(0, 0, -30)
		if historyFrom != "" {
			start, err = time.Parse(repository.DateLayout, historyFrom)
			if err != nil {
				return fmt.Errorf("Failed to parse --from: %w", err)
			}
		}
		if historyTo != "" {
			end, err = time.Parse(repository.DateLayout, historyTo)
			if err != nil {
				return fmt.Errorf("Failed to parse --to: %w", err)
			}
		}

		summaries, err := repository.New(st).DailySummary(start, end)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No workouts recorded in this range.")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		for _, ds := range summaries {
			bar := yellow(fmt.Sprintf("%d/%d", ds.CompletedCount, ds.TotalCount))
			if ds.CompletedCount == ds.TotalCount {
				bar = green(fmt.Sprintf("%d/%d ★", ds.CompletedCount, ds.TotalCount))
			}
			fmt.Printf("%s  %s\n", ds.Date, bar)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "Range start (YYYY-MM-DD, default 30 days ago)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "Range end (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(historyCmd)
}
