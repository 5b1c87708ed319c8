package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/gymweek/internal/models"
	"github.com/misterclayt0n/gymweek/internal/plan"
)

// Seeding sources recorded in seed_runs.
const (
	seedSourceCSV      = "csv"
	seedSourceFallback = "fallback"
)

// EnsureSeeded populates an empty plan store from the tabular sources in
// planDir, falling back to the built-in default week when nothing can be
// loaded. It runs at most once per handle even under concurrent callers and
// is best-effort: a failed seed is logged and swallowed, the store stays
// usable (empty until the next successful reload).
//
// This file owns the only code paths that clear plan data.
func (s *Storage) EnsureSeeded(planDir string) {
	s.seedOnce.Do(func() {
		count, err := s.ExerciseCount()
		if err != nil {
			log.Errorf("seed: count failed: %s", err)
			return
		}
		if count > 0 {
			log.Debugf("seed: plan already has %d exercises, skipping", count)
			return
		}

		exercises, source := loadPlan(planDir)
		if len(exercises) == 0 {
			log.Warnf("seed: no exercises loaded, plan stays empty")
			return
		}
		if err := s.InsertExercises(exercises); err != nil {
			log.Errorf("seed: insert failed: %s", err)
			return
		}
		if err := s.recordSeedRun(source, len(exercises)); err != nil {
			log.Warnf("seed: audit record failed: %s", err)
		}
		log.Infof("seed: loaded %d exercises (%s)", len(exercises), source)
	})
}

// Reload re-parses all sources, clears the plan store and inserts the fresh
// records. Unlike the initial seed it propagates errors, and it never
// destroys an existing plan in favor of an empty parse.
func (s *Storage) Reload(planDir string) (int, error) {
	exercises, err := plan.LoadWeek(planDir)
	if err != nil {
		return 0, fmt.Errorf("Failed to parse plan sources: %w", err)
	}
	if len(exercises) == 0 {
		return 0, fmt.Errorf("no exercises parsed from %s, keeping existing plan", planDir)
	}

	if err := s.ClearAllExercises(); err != nil {
		return 0, err
	}
	if err := s.InsertExercises(exercises); err != nil {
		return 0, err
	}
	if err := s.recordSeedRun(seedSourceCSV, len(exercises)); err != nil {
		log.Warnf("reload: audit record failed: %s", err)
	}
	return len(exercises), nil
}

// loadPlan reads the week from disk, falling back to the default full-week
// plan on total failure.
func loadPlan(planDir string) ([]models.Exercise, string) {
	exercises, err := plan.LoadWeek(planDir)
	if err != nil || len(exercises) == 0 {
		if err != nil {
			log.Warnf("seed: %s", err)
		}
		return plan.DefaultWeek(), seedSourceFallback
	}
	return exercises, seedSourceCSV
}

func (s *Storage) recordSeedRun(source string, inserted int) error {
	_, err := s.DB.Exec(
		`INSERT INTO seed_runs (id, source, inserted, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), source, inserted, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// LastSeedRun returns the most recent seed audit row, or nil when the store
// has never been seeded.
func (s *Storage) LastSeedRun() (*models.SeedRun, error) {
	var run models.SeedRun
	err := s.DB.QueryRow(
		`SELECT id, source, inserted, created_at
         FROM seed_runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&run.ID, &run.Source, &run.Inserted, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to get last seed run: %w", err)
	}
	return &run, nil
}
