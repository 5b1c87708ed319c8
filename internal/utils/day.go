package utils

import (
	"strings"
	"time"
)

// DayOfWeek converts a time to the plan's day numbering, 1=Monday through
// 7=Sunday.
func DayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // time.Sunday
		return 7
	}
	return wd
}

// CurrentDayOfWeek returns today's day number.
func CurrentDayOfWeek() int {
	return DayOfWeek(time.Now())
}

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// DayName returns the English name for a day number, defaulting to Monday
// for anything out of range.
func DayName(day int) string {
	if name, ok := dayNames[day]; ok {
		return name
	}
	return "Monday"
}

// ParseDayName maps a full day name (case insensitive) to its number.
// Returns 0 when unknown.
func ParseDayName(name string) int {
	for day, n := range dayNames {
		if strings.EqualFold(n, name) {
			return day
		}
	}
	return 0
}

var workoutFocus = map[int]string{
	1: "Back & Biceps",
	2: "Cardio & Abs",
	3: "Chest & Triceps",
	4: "Recovery & Stretching",
	5: "Legs & Shoulders",
	6: "CrossFit & Cardio",
	7: "Rest Day",
}

// WorkoutFocus returns the split's focus label for a day.
func WorkoutFocus(day int) string {
	if focus, ok := workoutFocus[day]; ok {
		return focus
	}
	return workoutFocus[1]
}

// IsRestDay reports whether the day is the split's rest day (Sunday).
func IsRestDay(day int) bool {
	return day == 7
}
