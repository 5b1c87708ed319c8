package plan

import (
	"reflect"
	"testing"
)

func TestDefaultMonday(t *testing.T) {
	exercises := DefaultMonday()
	if len(exercises) != 2 {
		t.Fatalf("expected minimal two-exercise subset, got %d", len(exercises))
	}
	for _, ex := range exercises {
		if !ex.Valid() {
			t.Fatalf("default exercise fails the insertion invariant: %+v", ex)
		}
		if ex.DayOfWeek != 1 {
			t.Fatalf("expected day 1, got %d", ex.DayOfWeek)
		}
	}
}

func TestDefaultWeek(t *testing.T) {
	exercises := DefaultWeek()

	perDay := make(map[int]int)
	for _, ex := range exercises {
		if !ex.Valid() {
			t.Fatalf("default exercise fails the insertion invariant: %+v", ex)
		}
		perDay[ex.DayOfWeek]++
	}

	for day := 1; day <= 6; day++ {
		if perDay[day] == 0 {
			t.Fatalf("default week missing day %d", day)
		}
	}
	// Sunday is the rest day of the default split.
	if perDay[7] != 0 {
		t.Fatalf("default week should leave day 7 empty, got %d", perDay[7])
	}
}

func TestDefaultWeekDeterministic(t *testing.T) {
	if !reflect.DeepEqual(DefaultWeek(), DefaultWeek()) {
		t.Fatal("default plan must be deterministic")
	}
}
