package plan

import "github.com/misterclayt0n/gymweek/internal/models"

// DefaultMonday is the minimal two-exercise Monday subset used when the
// Monday source alone is unavailable.
func DefaultMonday() []models.Exercise {
	return []models.Exercise{
		{
			ExerciseOrder:         "A1",
			Name:                  "Lat Pulldown Machine",
			PrimaryMuscleTarget:   "Latissimus Dorsi (Back Width)",
			Sets:                  3,
			Reps:                  "12-15",
			WeightRangeKg:         "45-65",
			MachineSetup:          "Wide grip, thigh pads snug, lean back slightly",
			RestTimeSeconds:       "20 → A2",
			MachineAlternative:    "Assisted Pull-ups",
			FreeWeightAlternative: "Pull-ups + Lat Pullover",
			FormCues:              "Pull to upper chest, squeeze lats, 2-sec negative",
			BackFatFocus:          "Builds lat width for V-taper",
			DayOfWeek:             1,
		},
		{
			ExerciseOrder:         "A2",
			Name:                  "Cable Bicep Curls",
			PrimaryMuscleTarget:   "Biceps Brachii (Arm Size)",
			Sets:                  3,
			Reps:                  "12-15",
			WeightRangeKg:         "25-40",
			MachineSetup:          "Low pulley, EZ-curl bar, elbows at sides",
			RestTimeSeconds:       "90 → A1",
			MachineAlternative:    "Dumbbell Bicep Curls",
			FreeWeightAlternative: "Barbell Curls",
			FormCues:              "Elbows stable, full ROM, squeeze at top",
			BackFatFocus:          "Arm size balances back development",
			DayOfWeek:             1,
		},
	}
}

// DefaultWeek is the full-week fallback plan used when no tabular source can
// be loaded at all. Day 7 is intentionally empty, Sunday is the rest day of
// the default split.
func DefaultWeek() []models.Exercise {
	exercises := DefaultMonday()

	// Tuesday, cardio and abs.
	exercises = append(exercises,
		models.Exercise{ExerciseOrder: "A1", Name: "Treadmill Warm-up", PrimaryMuscleTarget: "Cardiovascular System", Sets: 1, Reps: "5-10 min", WeightRangeKg: "0", MachineSetup: "Moderate pace, gradual increase", RestTimeSeconds: "60", MachineAlternative: "Elliptical", FreeWeightAlternative: "Outdoor Running", FormCues: "Maintain steady breathing", ChestDevelopmentFocus: "Cardio endurance", DayOfWeek: 2},
		models.Exercise{ExerciseOrder: "A2", Name: "Ab Crunch Machine", PrimaryMuscleTarget: "Rectus Abdominis", Sets: 3, Reps: "15-20", WeightRangeKg: "20-40", MachineSetup: "Adjust seat height, hands behind head", RestTimeSeconds: "30", MachineAlternative: "Cable Crunches", FreeWeightAlternative: "Floor Crunches", FormCues: "Slow controlled movement", ChestDevelopmentFocus: "Core strength", DayOfWeek: 2},
		models.Exercise{ExerciseOrder: "B1", Name: "Elliptical Cardio", PrimaryMuscleTarget: "Cardiovascular System", Sets: 1, Reps: "20-30 min", WeightRangeKg: "0", MachineSetup: "Moderate resistance, steady pace", RestTimeSeconds: "60", MachineAlternative: "Stationary Bike", FreeWeightAlternative: "Cycling", FormCues: "Maintain form", ChestDevelopmentFocus: "Cardio endurance", DayOfWeek: 2},
		models.Exercise{ExerciseOrder: "B2", Name: "Captain's Chair", PrimaryMuscleTarget: "Lower Abs", Sets: 3, Reps: "12-15", WeightRangeKg: "Body Weight", MachineSetup: "Support forearms, lift knees", RestTimeSeconds: "45", MachineAlternative: "Hanging Leg Raises", FreeWeightAlternative: "Floor Leg Raises", FormCues: "Controlled movement", ChestDevelopmentFocus: "Lower abs", DayOfWeek: 2},
	)

	// Wednesday, chest and triceps.
	exercises = append(exercises,
		models.Exercise{ExerciseOrder: "A1", Name: "Flat DB Press", PrimaryMuscleTarget: "Pectoralis Major", Sets: 3, Reps: "8-12", WeightRangeKg: "20-35 each", MachineSetup: "Bench flat, feet on floor", RestTimeSeconds: "90", MachineAlternative: "Barbell Bench Press", FreeWeightAlternative: "Push-ups", FormCues: "Full range of motion", CalorieBurnFocus: "Chest development", DayOfWeek: 3},
		models.Exercise{ExerciseOrder: "A2", Name: "Tricep Pushdown", PrimaryMuscleTarget: "Triceps Brachii", Sets: 3, Reps: "12-15", WeightRangeKg: "25-40", MachineSetup: "Cable machine, elbows at sides", RestTimeSeconds: "60", MachineAlternative: "Overhead DB Extension", FreeWeightAlternative: "Dips", FormCues: "Control the negative", CalorieBurnFocus: "Tricep strength", DayOfWeek: 3},
		models.Exercise{ExerciseOrder: "B1", Name: "Incline DB Press", PrimaryMuscleTarget: "Upper Chest", Sets: 3, Reps: "8-12", WeightRangeKg: "15-30 each", MachineSetup: "Incline bench 30-45 degrees", RestTimeSeconds: "90", MachineAlternative: "Incline Barbell Press", FreeWeightAlternative: "Incline Push-ups", FormCues: "Squeeze at top", CalorieBurnFocus: "Upper chest", DayOfWeek: 3},
		models.Exercise{ExerciseOrder: "B2", Name: "Cable Overhead Extension", PrimaryMuscleTarget: "Triceps", Sets: 3, Reps: "12-15", WeightRangeKg: "20-35", MachineSetup: "Cable behind head, elbows stable", RestTimeSeconds: "60", MachineAlternative: "DB Overhead Extension", FreeWeightAlternative: "Close-grip Push-ups", FormCues: "Full stretch", CalorieBurnFocus: "Tricep definition", DayOfWeek: 3},
	)

	// Thursday, recovery and stretching.
	exercises = append(exercises,
		models.Exercise{ExerciseOrder: "A1", Name: "Joint Mobility Warm-up", PrimaryMuscleTarget: "Full Body", Sets: 1, Reps: "10-15 min", WeightRangeKg: "0", MachineSetup: "Gentle movements, all joints", RestTimeSeconds: "30", MachineAlternative: "Dynamic Stretching", FreeWeightAlternative: "Yoga Flow", FormCues: "Slow and controlled", VTaperCoreFocus: "Mobility", DayOfWeek: 4},
		models.Exercise{ExerciseOrder: "A2", Name: "Neck Side Stretch", PrimaryMuscleTarget: "Neck Muscles", Sets: 3, Reps: "30 sec hold", WeightRangeKg: "0", MachineSetup: "Gentle pull, hold each side", RestTimeSeconds: "30", MachineAlternative: "Neck Rolls", FreeWeightAlternative: "Self-massage", FormCues: "No pain", VTaperCoreFocus: "Tension relief", DayOfWeek: 4},
		models.Exercise{ExerciseOrder: "B1", Name: "Cat-Cow Stretch", PrimaryMuscleTarget: "Spine", Sets: 3, Reps: "10 reps", WeightRangeKg: "0", MachineSetup: "On hands and knees", RestTimeSeconds: "30", MachineAlternative: "Spinal Twist", FreeWeightAlternative: "Child's Pose", FormCues: "Slow movement", VTaperCoreFocus: "Spinal mobility", DayOfWeek: 4},
		models.Exercise{ExerciseOrder: "B2", Name: "Hip Flexor Stretch", PrimaryMuscleTarget: "Hip Flexors", Sets: 3, Reps: "30 sec hold", WeightRangeKg: "0", MachineSetup: "Lunge position, push hips forward", RestTimeSeconds: "30", MachineAlternative: "Pigeon Pose", FreeWeightAlternative: "Butterfly Stretch", FormCues: "Breathe deeply", VTaperCoreFocus: "Hip flexibility", DayOfWeek: 4},
	)

	// Friday, legs and shoulders.
	exercises = append(exercises,
		models.Exercise{ExerciseOrder: "A1", Name: "Squats", PrimaryMuscleTarget: "Quadriceps", Sets: 3, Reps: "8-12", WeightRangeKg: "Body Weight", MachineSetup: "Feet shoulder-width apart", RestTimeSeconds: "120", MachineAlternative: "Goblet Squats", FreeWeightAlternative: "Wall Sits", FormCues: "Full depth", DefinitionFocus: "Leg strength", DayOfWeek: 5},
		models.Exercise{ExerciseOrder: "A2", Name: "Overhead Press DB", PrimaryMuscleTarget: "Deltoids", Sets: 3, Reps: "8-12", WeightRangeKg: "12-20 each", MachineSetup: "Start at shoulders, press up", RestTimeSeconds: "90", MachineAlternative: "Barbell Press", FreeWeightAlternative: "Pike Push-ups", FormCues: "Core engaged", DefinitionFocus: "Shoulder strength", DayOfWeek: 5},
		models.Exercise{ExerciseOrder: "B1", Name: "Forward Lunges", PrimaryMuscleTarget: "Quadriceps", Sets: 3, Reps: "10 each", WeightRangeKg: "Body Weight", MachineSetup: "Step forward, lower back knee", RestTimeSeconds: "90", MachineAlternative: "Reverse Lunges", FreeWeightAlternative: "Bulgarian Split Squats", FormCues: "Controlled movement", DefinitionFocus: "Leg balance", DayOfWeek: 5},
		models.Exercise{ExerciseOrder: "B2", Name: "Lateral Raise DB", PrimaryMuscleTarget: "Deltoids", Sets: 3, Reps: "12-15", WeightRangeKg: "5-12 each", MachineSetup: "Arms to sides, lift to shoulder height", RestTimeSeconds: "60", MachineAlternative: "Cable Lateral Raises", FreeWeightAlternative: "Band Lateral Raises", FormCues: "No momentum", DefinitionFocus: "Shoulder width", DayOfWeek: 5},
	)

	// Saturday, crossfit and cardio.
	exercises = append(exercises,
		models.Exercise{ExerciseOrder: "A1", Name: "Burpees", PrimaryMuscleTarget: "Full Body", Sets: 3, Reps: "8-12", WeightRangeKg: "Body Weight", MachineSetup: "Push-up to jump sequence", RestTimeSeconds: "60", MachineAlternative: "Modified Burpees", FreeWeightAlternative: "Mountain Climbers", FormCues: "Full range", FatBurnStrategy: "Cardio strength", DayOfWeek: 6},
		models.Exercise{ExerciseOrder: "A2", Name: "Kettlebell Swings", PrimaryMuscleTarget: "Posterior Chain", Sets: 3, Reps: "15-20", WeightRangeKg: "15-25", MachineSetup: "Hip hinge movement", RestTimeSeconds: "90", MachineAlternative: "Deadlifts", FreeWeightAlternative: "Romanian Deadlifts", FormCues: "Hip drive", FatBurnStrategy: "Power development", DayOfWeek: 6},
		models.Exercise{ExerciseOrder: "B1", Name: "Box Jumps", PrimaryMuscleTarget: "Lower Body Power", Sets: 3, Reps: "8-10", WeightRangeKg: "Body Weight", MachineSetup: "Land softly, step down", RestTimeSeconds: "90", MachineAlternative: "Step-ups", FreeWeightAlternative: "Jump Squats", FormCues: "Controlled landing", FatBurnStrategy: "Explosive power", DayOfWeek: 6},
		models.Exercise{ExerciseOrder: "B2", Name: "Battle Ropes", PrimaryMuscleTarget: "Cardiovascular", Sets: 3, Reps: "30 sec", WeightRangeKg: "Body Weight", MachineSetup: "Alternating waves", RestTimeSeconds: "60", MachineAlternative: "Jump Rope", FreeWeightAlternative: "High Knees", FormCues: "Full intensity", FatBurnStrategy: "Cardio endurance", DayOfWeek: 6},
	)

	return exercises
}
