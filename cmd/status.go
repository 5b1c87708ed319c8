package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymweek/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show plan counts per day and the last seed run",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		total, err := st.ExerciseCount()
		if err != nil {
			return err
		}
		fmt.Printf("%s %d exercises\n", cyan("Plan:"), total)
		for day := 1; day <= 7; day++ {
			exercises, err := st.GetExercisesForDay(day)
			if err != nil {
				return err
			}
			fmt.Printf("  %-9s %2d  (%s)\n", utils.DayName(day), len(exercises), utils.WorkoutFocus(day))
		}

		run, err := st.LastSeedRun()
		if err != nil {
			return err
		}
		if run == nil {
			fmt.Printf("\n%s never\n", cyan("Last seed:"))
		} else {
			fmt.Printf("\n%s %s, %d exercises from %s (run %s)\n",
				cyan("Last seed:"), run.CreatedAt, run.Inserted, green(run.Source), run.ID)
		}

		fmt.Printf("%s %s\n", cyan("Plan dir:"), cfg.Plan.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
