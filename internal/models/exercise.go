package models

// Exercise is one planned slot of the weekly plan. The seven day formats
// collapse into this single superset shape: the core fields are always
// present, the rest depend on which day the row came from.
type Exercise struct {
	ID                  int64  `json:"id"`
	ExerciseOrder       string `json:"exercise_order"` // A1, A2... or a station number on day 6.
	Name                string `json:"name"`
	PrimaryMuscleTarget string `json:"primary_muscle_target"`
	Sets                int    `json:"sets"`
	Reps                string `json:"reps"`            // "12-15", "30 sec hold", reps per 45s interval...
	WeightRangeKg       string `json:"weight_range_kg"` // "45-65", "Body Weight", or a band resistance label.
	DayOfWeek           int    `json:"day_of_week"`     // 1=Monday .. 7=Sunday.

	// Optional fields, "" means absent.
	MachineSetup          string `json:"machine_setup,omitempty"` // Setup_Instructions on day 7.
	RestTimeSeconds       string `json:"rest_time_seconds,omitempty"`
	MachineAlternative    string `json:"machine_alternative,omitempty"` // Bodyweight_Alternative on day 7.
	FreeWeightAlternative string `json:"free_weight_alternative,omitempty"`
	FormCues              string `json:"form_cues,omitempty"`

	// Day-specific focus fields, at most one group set per record.
	BackFatFocus          string `json:"back_fat_focus,omitempty"`          // Day 1.
	ChestDevelopmentFocus string `json:"chest_development_focus,omitempty"` // Day 2.
	CalorieBurnFocus      string `json:"calorie_burn_focus,omitempty"`      // Day 3.
	VTaperCoreFocus       string `json:"vtaper_core_focus,omitempty"`       // Day 4.
	DefinitionFocus       string `json:"definition_focus,omitempty"`        // Day 5.
	FatBurnStrategy       string `json:"fat_burn_strategy,omitempty"`       // Day 6.
	WorkDurationSeconds   string `json:"work_duration_seconds,omitempty"`   // Day 6.
	RoundsTotal           string `json:"rounds_total,omitempty"`            // Day 6, raw "3 rounds" value.
	HomeWorkoutBenefits   string `json:"home_workout_benefits,omitempty"`   // Day 7.
	ProgressionTips       string `json:"progression_tips,omitempty"`        // Day 7.
}

// Valid reports whether the record satisfies the insertion invariant.
// Rows failing this are dropped during parsing and never reach the store.
func (e Exercise) Valid() bool {
	if e.DayOfWeek < 1 || e.DayOfWeek > 7 {
		return false
	}
	if e.Sets <= 0 {
		return false
	}
	return e.ExerciseOrder != "" &&
		e.Name != "" &&
		e.PrimaryMuscleTarget != "" &&
		e.Reps != "" &&
		e.WeightRangeKg != ""
}
