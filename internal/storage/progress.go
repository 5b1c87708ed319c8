package storage

import (
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/gymweek/internal/models"
)

// GetProgressForDate returns all completion marks for one calendar date.
func (s *Storage) GetProgressForDate(date string) ([]models.ExerciseProgress, error) {
	rows, err := s.DB.Query(
		`SELECT id, exercise_id, date, completed FROM exercise_progress WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("Failed to query progress for %s: %w", date, err)
	}
	defer rows.Close()

	var progress []models.ExerciseProgress
	for rows.Next() {
		var p models.ExerciseProgress
		if err := rows.Scan(&p.ID, &p.ExerciseID, &p.Date, &p.Completed); err != nil {
			return nil, fmt.Errorf("Failed to scan progress: %w", err)
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

// GetProgressForExerciseOnDate is a point lookup. A nil result means no mark
// exists yet, which is distinct from "exists but not completed".
func (s *Storage) GetProgressForExerciseOnDate(exerciseID int64, date string) (*models.ExerciseProgress, error) {
	var p models.ExerciseProgress
	err := s.DB.QueryRow(
		`SELECT id, exercise_id, date, completed
         FROM exercise_progress WHERE exercise_id = ? AND date = ? LIMIT 1`,
		exerciseID, date,
	).Scan(&p.ID, &p.ExerciseID, &p.Date, &p.Completed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to get progress: %w", err)
	}
	return &p, nil
}

// UpsertProgress inserts or fully replaces the row keyed by the unique
// (exercise_id, date) pair. Last write wins, nothing is merged.
func (s *Storage) UpsertProgress(p models.ExerciseProgress) error {
	var id any
	if p.ID != 0 {
		id = p.ID
	}

	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO exercise_progress (id, exercise_id, date, completed)
         VALUES (?, ?, ?, ?)`,
		id, p.ExerciseID, p.Date, p.Completed,
	)
	if err != nil {
		return fmt.Errorf("Failed to upsert progress: %w", err)
	}
	return nil
}

// GetDailySummary aggregates progress per date over [startDate, endDate]
// inclusive, most recent date first. Dates without any progress rows do not
// appear.
func (s *Storage) GetDailySummary(startDate, endDate string) ([]models.DailySummary, error) {
	rows, err := s.DB.Query(
		`SELECT date,
                COUNT(CASE WHEN completed THEN 1 END) AS completed_count,
                COUNT(*) AS total_count
         FROM exercise_progress
         WHERE date BETWEEN ? AND ?
         GROUP BY date
         ORDER BY date DESC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to query daily summary: %w", err)
	}
	defer rows.Close()

	var summaries []models.DailySummary
	for rows.Next() {
		var ds models.DailySummary
		if err := rows.Scan(&ds.Date, &ds.CompletedCount, &ds.TotalCount); err != nil {
			return nil, fmt.Errorf("Failed to scan daily summary: %w", err)
		}
		summaries = append(summaries, ds)
	}
	return summaries, rows.Err()
}
