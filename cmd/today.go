package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymweek/internal/repository"
	"github.com/misterclayt0n/gymweek/internal/utils"
)

var (
	todayDate  string
	todayWatch bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workout with completion marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()
		repo := repository.New(st)

		date := time.Now()
		if todayDate != "" {
			date, err = time.Parse(repository.DateLayout, todayDate)
			if err != nil {
				return fmt.Errorf("Failed to parse date %q: %w", todayDate, err)
			}
		}

		if todayWatch {
			return watchWorkout(repo, date)
		}

		items, err := repo.Workout(date)
		if err != nil {
			return err
		}
		printWorkout(date, items)
		return nil
	},
}

func printWorkout(date time.Time, items []repository.WorkoutItem) {
	day := utils.DayOfWeek(date)
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Printf("%s — %s (%s)\n\n",
		green(utils.DayName(day)),
		cyan(utils.WorkoutFocus(day)),
		date.Format(repository.DateLayout))

	// An empty day is a valid state, not an error. Sunday genuinely rests.
	if len(items) == 0 {
		if utils.IsRestDay(day) {
			fmt.Println("Rest day, nothing planned. Enjoy it.")
		} else {
			fmt.Println("No exercises planned for today.")
		}
		return
	}

	done := 0
	for _, item := range items {
		mark := "[ ]"
		if item.Marked && item.Completed {
			mark = green("[✓]")
			done++
		}
		ex := item.Exercise
		fmt.Printf("%s %s %s — %s\n", mark, cyan(ex.ExerciseOrder), yellow(ex.Name), ex.PrimaryMuscleTarget)
		fmt.Printf("      id %d | %d × %s @ %s", ex.ID, ex.Sets, ex.Reps, ex.WeightRangeKg)
		if ex.RestTimeSeconds != "" {
			fmt.Printf(" | rest %s", ex.RestTimeSeconds)
		}
		fmt.Println()
	}
	fmt.Printf("\nCompleted %d/%d\n", done, len(items))
}

// watchWorkout re-renders whenever the underlying progress changes, until
// interrupted.
func watchWorkout(repo *repository.Repository, date time.Time) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	updates := repo.WatchProgressForDate(ctx, date, 2*time.Second)
	for range updates {
		items, err := repo.Workout(date)
		if err != nil {
			return err
		}
		fmt.Print("\033[H\033[2J") // Clear screen between renders.
		printWorkout(date, items)
	}
	return nil
}

func init() {
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "Show the workout for a specific date (YYYY-MM-DD)")
	todayCmd.Flags().BoolVarP(&todayWatch, "watch", "w", false, "Keep watching for progress changes")
	rootCmd.AddCommand(todayCmd)
}
