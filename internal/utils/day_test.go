package utils

import (
	"testing"
	"time"
)

func TestDayOfWeek(t *testing.T) {
	for _, tc := range []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1}, // Monday
		{time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 3}, // Wednesday
		{time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 6}, // Saturday
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 7}, // Sunday
	} {
		if got := DayOfWeek(tc.date); got != tc.want {
			t.Fatalf("DayOfWeek(%s) = %d, want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestDayName(t *testing.T) {
	if got := DayName(3); got != "Wednesday" {
		t.Fatalf("DayName(3) = %q", got)
	}
	if got := DayName(0); got != "Monday" {
		t.Fatalf("out-of-range day must default to Monday, got %q", got)
	}
}

func TestParseDayName(t *testing.T) {
	if got := ParseDayName("saturday"); got != 6 {
		t.Fatalf("ParseDayName(saturday) = %d", got)
	}
	if got := ParseDayName("SUNDAY"); got != 7 {
		t.Fatalf("ParseDayName(SUNDAY) = %d", got)
	}
	if got := ParseDayName("someday"); got != 0 {
		t.Fatalf("unknown names must map to 0, got %d", got)
	}
}

func TestWorkoutFocus(t *testing.T) {
	if got := WorkoutFocus(1); got != "Back & Biceps" {
		t.Fatalf("WorkoutFocus(1) = %q", got)
	}
	if got := WorkoutFocus(7); got != "Rest Day" {
		t.Fatalf("WorkoutFocus(7) = %q", got)
	}
	if got := WorkoutFocus(42); got != "Back & Biceps" {
		t.Fatalf("out-of-range focus must default, got %q", got)
	}
}

func TestIsRestDay(t *testing.T) {
	if !IsRestDay(7) {
		t.Fatal("Sunday is the rest day")
	}
	for day := 1; day <= 6; day++ {
		if IsRestDay(day) {
			t.Fatalf("day %d is not a rest day", day)
		}
	}
}
