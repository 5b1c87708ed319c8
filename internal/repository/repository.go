package repository

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/misterclayt0n/gymweek/internal/models"
	"github.com/misterclayt0n/gymweek/internal/storage"
	"github.com/misterclayt0n/gymweek/internal/utils"
)

// DateLayout is the ISO calendar-date form progress records are keyed by.
const DateLayout = "2006-01-02"

// Repository is the query/command facade over the plan and progress stores.
// All consumers go through it.
type Repository struct {
	st *storage.Storage
}

func New(st *storage.Storage) *Repository {
	return &Repository{st: st}
}

// ExercisesForDay returns the plan for a day of week (1=Monday..7=Sunday) in
// stable display order.
func (r *Repository) ExercisesForDay(day int) ([]models.Exercise, error) {
	if day < 1 || day > 7 {
		return nil, fmt.Errorf("Invalid day of week: %d", day)
	}
	return r.st.GetExercisesForDay(day)
}

// ProgressForDate returns all completion marks for a calendar date.
func (r *Repository) ProgressForDate(date time.Time) ([]models.ExerciseProgress, error) {
	return r.st.GetProgressForDate(date.Format(DateLayout))
}

// ToggleProgress sets the completion mark for (exerciseID, date). It reads
// any existing record first to preserve its id, then upserts the new value.
//
// The read and the upsert are two storage calls, not one atomic operation:
// two concurrent toggles for the same pair can race and the later upsert
// wins whole-row. Known and accepted for a single-user local store.
func (r *Repository) ToggleProgress(exerciseID int64, date time.Time, completed bool) error {
	iso := date.Format(DateLayout)

	current, err := r.st.GetProgressForExerciseOnDate(exerciseID, iso)
	if err != nil {
		return err
	}

	updated := models.ExerciseProgress{
		ExerciseID: exerciseID,
		Date:       iso,
		Completed:  completed,
	}
	if current != nil {
		updated.ID = current.ID
	}
	return r.st.UpsertProgress(updated)
}

// DailySummary returns per-date completion aggregates over [start, end]
// inclusive, most recent date first.
func (r *Repository) DailySummary(start, end time.Time) ([]models.DailySummary, error) {
	return r.st.GetDailySummary(start.Format(DateLayout), end.Format(DateLayout))
}

// WorkoutItem is one exercise of a dated workout joined with its completion
// mark. Marked distinguishes "toggled off" from "never touched".
type WorkoutItem struct {
	Exercise  models.Exercise
	Completed bool
	Marked    bool
}

// Workout joins the plan of the date's weekday with that date's progress.
func (r *Repository) Workout(date time.Time) ([]WorkoutItem, error) {
	exercises, err := r.ExercisesForDay(utils.DayOfWeek(date))
	if err != nil {
		return nil, err
	}
	progress, err := r.ProgressForDate(date)
	if err != nil {
		return nil, err
	}

	byExercise := make(map[int64]models.ExerciseProgress, len(progress))
	for _, p := range progress {
		byExercise[p.ExerciseID] = p
	}

	items := make([]WorkoutItem, 0, len(exercises))
	for _, ex := range exercises {
		item := WorkoutItem{Exercise: ex}
		if p, ok := byExercise[ex.ID]; ok {
			item.Completed = p.Completed
			item.Marked = true
		}
		items = append(items, item)
	}
	return items, nil
}

// WatchExercisesForDay polls the plan for a day and delivers a snapshot
// whenever it changes (including one initial snapshot). Cancel the context
// to unsubscribe; the channel is closed and delivery stops without side
// effects.
func (r *Repository) WatchExercisesForDay(ctx context.Context, day int, interval time.Duration) (<-chan []models.Exercise, error) {
	if day < 1 || day > 7 {
		return nil, fmt.Errorf("Invalid day of week: %d", day)
	}
	return watch(ctx, interval, func() ([]models.Exercise, error) {
		return r.st.GetExercisesForDay(day)
	}), nil
}

// WatchProgressForDate is the progress counterpart of WatchExercisesForDay.
func (r *Repository) WatchProgressForDate(ctx context.Context, date time.Time, interval time.Duration) <-chan []models.ExerciseProgress {
	iso := date.Format(DateLayout)
	return watch(ctx, interval, func() ([]models.ExerciseProgress, error) {
		return r.st.GetProgressForDate(iso)
	})
}

// watch is the shared polling loop. Query errors are skipped, the next tick
// retries.
func watch[T any](ctx context.Context, interval time.Duration, fetch func() ([]T, error)) <-chan []T {
	ch := make(chan []T)

	go func() {
		defer close(ch)

		var (
			last []T
			sent bool
		)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			snapshot, err := fetch()
			if err == nil && (!sent || !reflect.DeepEqual(snapshot, last)) {
				select {
				case ch <- snapshot:
					last = snapshot
					sent = true
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
