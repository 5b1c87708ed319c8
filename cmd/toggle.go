package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymweek/internal/repository"
	"github.com/misterclayt0n/gymweek/internal/utils"
)

var (
	toggleDate string
	toggleUndo bool
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <exercise-id>",
	Short: "Mark an exercise complete (or incomplete with --undo) for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid exercise id: %q", args[0])
		}

		st, _, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		date := time.Now()
		if toggleDate != "" {
			date, err = time.Parse(repository.DateLayout, toggleDate)
			if err != nil {
				return fmt.Errorf("Failed to parse date %q: %w", toggleDate, err)
			}
		}

		ex, err := st.GetExerciseByID(exerciseID)
		if err != nil {
			return err
		}
		if ex == nil {
			return fmt.Errorf("No exercise with id %d", exerciseID)
		}
		if day := utils.DayOfWeek(date); ex.DayOfWeek != day {
			fmt.Printf("Note: %s belongs to %s, toggling it for %s anyway\n",
				ex.Name, utils.DayName(ex.DayOfWeek), utils.DayName(day))
		}

		completed := !toggleUndo
		if err := repository.New(st).ToggleProgress(exerciseID, date, completed); err != nil {
			return fmt.Errorf("Failed to toggle progress: %w", err)
		}

		state := "complete"
		if !completed {
			state = "incomplete"
		}
		fmt.Printf("✅ %s marked %s for %s\n", ex.Name, state, date.Format(repository.DateLayout))
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVarP(&toggleDate, "date", "d", "", "Date to toggle (YYYY-MM-DD, default today)")
	toggleCmd.Flags().BoolVarP(&toggleUndo, "undo", "u", false, "Mark incomplete instead of complete")
	rootCmd.AddCommand(toggleCmd)
}
