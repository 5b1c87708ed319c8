package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymweek/internal/models"
	"github.com/misterclayt0n/gymweek/internal/repository"
	"github.com/misterclayt0n/gymweek/internal/utils"
)

// dayDetails enables the full per-exercise breakdown.
var dayDetails bool

var dayCmd = &cobra.Command{
	Use:   "day <1-7|monday..sunday>",
	Short: "Show the plan for a day of the week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDayArg(args[0])
		if err != nil {
			return err
		}

		st, _, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercises, err := repository.New(st).ExercisesForDay(day)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("%s — %s\n\n", green(utils.DayName(day)), cyan(utils.WorkoutFocus(day)))
		if len(exercises) == 0 {
			fmt.Println("Nothing planned.")
			return nil
		}

		for _, ex := range exercises {
			fmt.Printf("%s %s — %s\n", cyan(ex.ExerciseOrder), yellow(ex.Name), ex.PrimaryMuscleTarget)
			fmt.Printf("   %d × %s @ %s\n", ex.Sets, ex.Reps, ex.WeightRangeKg)
			if dayDetails {
				printExerciseDetails(ex)
			}
		}
		return nil
	},
}

func parseDayArg(arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("Invalid day of week: %d", n)
		}
		return n, nil
	}
	if day := utils.ParseDayName(arg); day != 0 {
		return day, nil
	}
	return 0, fmt.Errorf("Invalid day: %q", arg)
}

func printExerciseDetails(ex models.Exercise) {
	cyan := color.New(color.FgCyan).SprintFunc()

	detail := func(label, value string) {
		if value != "" {
			fmt.Printf("   %s %s\n", cyan(label+":"), value)
		}
	}

	detail("Setup", ex.MachineSetup)
	detail("Rest", ex.RestTimeSeconds)
	detail("Machine alt", ex.MachineAlternative)
	detail("Free weight alt", ex.FreeWeightAlternative)
	detail("Cues", ex.FormCues)
	detail("Focus", ex.BackFatFocus)
	detail("Focus", ex.ChestDevelopmentFocus)
	detail("Focus", ex.CalorieBurnFocus)
	detail("Focus", ex.VTaperCoreFocus)
	detail("Focus", ex.DefinitionFocus)
	detail("Strategy", ex.FatBurnStrategy)
	detail("Work duration", ex.WorkDurationSeconds)
	detail("Rounds", ex.RoundsTotal)
	detail("Benefits", ex.HomeWorkoutBenefits)
	detail("Progression", ex.ProgressionTips)
}

func init() {
	dayCmd.Flags().BoolVarP(&dayDetails, "details", "v", false, "Print setup, rest, alternatives and focus notes")
	rootCmd.AddCommand(dayCmd)
}
