package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/gymweek/internal/models"
)

const exerciseColumns = `id, exercise_order, exercise_name, primary_muscle_target,
    sets, reps, weight_range_kg, machine_setup, rest_time_seconds,
    machine_alternative, free_weight_alternative, form_cues, back_fat_focus,
    chest_development_focus, calorie_burn_focus, vtaper_core_focus,
    definition_focus, fat_burn_strategy, work_duration_seconds, rounds_total,
    home_workout_benefits, progression_tips, day_of_week`

// InsertExercises bulk-inserts plan records in one transaction. Records
// carrying an explicit id that already exists are ignored, so re-inserting
// the same set is a per-record no-op.
func (s *Storage) InsertExercises(exercises []models.Exercise) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ex := range exercises {
		// A zero id means "assign one".
		var id any
		if ex.ID != 0 {
			id = ex.ID
		}

		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO exercises (`+exerciseColumns+`)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			ex.ExerciseOrder,
			ex.Name,
			ex.PrimaryMuscleTarget,
			ex.Sets,
			ex.Reps,
			ex.WeightRangeKg,
			ex.MachineSetup,
			ex.RestTimeSeconds,
			ex.MachineAlternative,
			ex.FreeWeightAlternative,
			ex.FormCues,
			ex.BackFatFocus,
			ex.ChestDevelopmentFocus,
			ex.CalorieBurnFocus,
			ex.VTaperCoreFocus,
			ex.DefinitionFocus,
			ex.FatBurnStrategy,
			ex.WorkDurationSeconds,
			ex.RoundsTotal,
			ex.HomeWorkoutBenefits,
			ex.ProgressionTips,
			ex.DayOfWeek,
		)
		if err != nil {
			return fmt.Errorf("Failed to insert exercise %q: %w", ex.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

// ExerciseCount returns the total number of plan records.
func (s *Storage) ExerciseCount() (int, error) {
	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return 0, fmt.Errorf("Failed to count exercises: %w", err)
	}
	return count, nil
}

// GetExerciseByID returns nil when no record exists.
func (s *Storage) GetExerciseByID(id int64) (*models.Exercise, error) {
	row := s.DB.QueryRow(`SELECT `+exerciseColumns+` FROM exercises WHERE id = ? LIMIT 1`, id)
	ex, err := scanExercise(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to get exercise %d: %w", id, err)
	}
	return ex, nil
}

// GetExercisesForDay returns the plan for one day of week, in ascending
// insertion order so display matches the source row order.
func (s *Storage) GetExercisesForDay(day int) ([]models.Exercise, error) {
	rows, err := s.DB.Query(
		`SELECT `+exerciseColumns+` FROM exercises WHERE day_of_week = ? ORDER BY id ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("Failed to query exercises for day %d: %w", day, err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}

// ClearAllExercises deletes the whole plan. Reserved for the seeding path.
func (s *Storage) ClearAllExercises() error {
	_, err := s.DB.Exec(`DELETE FROM exercises`)
	if err != nil {
		return fmt.Errorf("Failed to clear exercises: %w", err)
	}
	return nil
}

// ClearExercisesForDay deletes the plan of a single day.
func (s *Storage) ClearExercisesForDay(day int) error {
	_, err := s.DB.Exec(`DELETE FROM exercises WHERE day_of_week = ?`, day)
	if err != nil {
		return fmt.Errorf("Failed to clear exercises for day %d: %w", day, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExercise(row scanner) (*models.Exercise, error) {
	var ex models.Exercise
	err := row.Scan(
		&ex.ID,
		&ex.ExerciseOrder,
		&ex.Name,
		&ex.PrimaryMuscleTarget,
		&ex.Sets,
		&ex.Reps,
		&ex.WeightRangeKg,
		&ex.MachineSetup,
		&ex.RestTimeSeconds,
		&ex.MachineAlternative,
		&ex.FreeWeightAlternative,
		&ex.FormCues,
		&ex.BackFatFocus,
		&ex.ChestDevelopmentFocus,
		&ex.CalorieBurnFocus,
		&ex.VTaperCoreFocus,
		&ex.DefinitionFocus,
		&ex.FatBurnStrategy,
		&ex.WorkDurationSeconds,
		&ex.RoundsTotal,
		&ex.HomeWorkoutBenefits,
		&ex.ProgressionTips,
		&ex.DayOfWeek,
	)
	if err != nil {
		return nil, err
	}
	return &ex, nil
}
