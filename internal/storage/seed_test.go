package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/gymweek/internal/models"
	"github.com/misterclayt0n/gymweek/internal/plan"
)

const mondayCSV = `Exercise_Order,Exercise_Name,Primary_Muscle_Target,Sets,Reps,Weight_Range_kg
A1,Lat Pulldown,Lats,3,12-15,45-65
A2,Cable Curls,Biceps,3,12-15,15-25
`

func writePlanDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "MONDAY.csv"), []byte(mondayCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestEnsureSeededFromCSV(t *testing.T) {
	s := newTestStore(t)
	s.EnsureSeeded(writePlanDir(t))

	count, _ := s.ExerciseCount()
	if count != 2 {
		t.Fatalf("expected 2 seeded exercises, got %d", count)
	}

	run, err := s.LastSeedRun()
	if err != nil {
		t.Fatal(err)
	}
	if run == nil {
		t.Fatal("expected a seed run record")
	}
	if run.Source != seedSourceCSV || run.Inserted != 2 {
		t.Fatalf("unexpected seed run: %+v", run)
	}
	if run.ID == "" || run.CreatedAt == "" {
		t.Fatalf("seed run missing audit fields: %+v", run)
	}
}

func TestEnsureSeededFallback(t *testing.T) {
	s := newTestStore(t)

	// Missing plan dir falls back to the built-in week.
	s.EnsureSeeded(filepath.Join(t.TempDir(), "nope"))

	count, _ := s.ExerciseCount()
	if want := len(plan.DefaultWeek()); count != want {
		t.Fatalf("expected %d fallback exercises, got %d", want, count)
	}

	run, _ := s.LastSeedRun()
	if run == nil || run.Source != seedSourceFallback {
		t.Fatalf("expected fallback seed run, got %+v", run)
	}
}

func TestEnsureSeededSkipsNonEmpty(t *testing.T) {
	s := newTestStore(t)
	s.InsertExercises([]models.Exercise{testExercise("A1", "Existing", 1)})

	s.EnsureSeeded(writePlanDir(t))

	count, _ := s.ExerciseCount()
	if count != 1 {
		t.Fatalf("seed must not touch a non-empty plan, got %d", count)
	}
	run, _ := s.LastSeedRun()
	if run != nil {
		t.Fatal("skipped seed must not record a run")
	}
}

func TestEnsureSeededOncePerHandle(t *testing.T) {
	s := newTestStore(t)
	dir := writePlanDir(t)

	s.EnsureSeeded(dir)
	s.ClearAllExercises()
	s.EnsureSeeded(dir)

	count, _ := s.ExerciseCount()
	if count != 0 {
		t.Fatal("second EnsureSeeded on the same handle must be a no-op")
	}
}

func TestReloadReplacesPlan(t *testing.T) {
	s := newTestStore(t)
	s.InsertExercises([]models.Exercise{
		testExercise("A1", "Old One", 1),
		testExercise("A1", "Old Two", 2),
		testExercise("A1", "Old Three", 3),
	})

	n, err := s.Reload(writePlanDir(t))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 reloaded exercises, got %d", n)
	}
	count, _ := s.ExerciseCount()
	if count != 2 {
		t.Fatalf("old plan must be gone, got count %d", count)
	}
	day1, _ := s.GetExercisesForDay(1)
	if len(day1) != 2 || day1[0].Name != "Lat Pulldown" {
		t.Fatalf("unexpected day 1 after reload: %+v", day1)
	}
}

func TestReloadMissingDirKeepsPlan(t *testing.T) {
	s := newTestStore(t)
	s.InsertExercises([]models.Exercise{testExercise("A1", "Keep Me", 1)})

	_, err := s.Reload(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing plan dir")
	}
	count, _ := s.ExerciseCount()
	if count != 1 {
		t.Fatal("a failed reload must never clear the existing plan")
	}
}
