package plan

import (
	"os"
	"path/filepath"
	"testing"
)

const mondayHeader = "Exercise_Order,Exercise_Name,Primary_Muscle_Target,Sets,Reps,Weight_Range_kg"

func TestParseDayMonday(t *testing.T) {
	data := []byte(mondayHeader + "\n" +
		"A1,Lat Pulldown,Lats,3,12-15,45-65\n")

	exercises, err := ParseDay(1, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(exercises))
	}

	ex := exercises[0]
	if ex.ExerciseOrder != "A1" || ex.Name != "Lat Pulldown" || ex.PrimaryMuscleTarget != "Lats" {
		t.Fatalf("unexpected exercise: %+v", ex)
	}
	if ex.Sets != 3 {
		t.Fatalf("expected sets=3, got %d", ex.Sets)
	}
	if ex.Reps != "12-15" || ex.WeightRangeKg != "45-65" {
		t.Fatalf("unexpected reps/weight: %q %q", ex.Reps, ex.WeightRangeKg)
	}
	if ex.DayOfWeek != 1 {
		t.Fatalf("expected day 1, got %d", ex.DayOfWeek)
	}
}

func TestParseDaySkipsRowMissingRequiredField(t *testing.T) {
	data := []byte(mondayHeader + "\n" +
		"A1,Lat Pulldown,Lats,3,12-15,45-65\n" +
		"A2,,Biceps,3,12-15,25-40\n" + // No name.
		"B1,Cable Row,Mid Back,3,10-12,50-70\n")

	exercises, err := ParseDay(1, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 2 {
		t.Fatalf("expected bad row skipped, got %d exercises", len(exercises))
	}
	if exercises[1].Name != "Cable Row" {
		t.Fatal("row after the bad one should still parse")
	}
}

func TestParseDaySkipsNonNumericSets(t *testing.T) {
	data := []byte(mondayHeader + "\n" +
		"A1,Lat Pulldown,Lats,three,12-15,45-65\n")

	exercises, err := ParseDay(1, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 0 {
		t.Fatalf("non-numeric sets should drop the row, got %d", len(exercises))
	}
}

func TestParseDayQuotedDelimiter(t *testing.T) {
	data := []byte("Exercise_Order,Exercise_Name,Primary_Muscle_Target,Sets,Reps,Weight_Range_kg,Rest_Time_Seconds\n" +
		`A1,Lat Pulldown,Lats,3,12-15,45-65,"90 → A2, hold"` + "\n")

	exercises, err := ParseDay(1, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(exercises))
	}
	if exercises[0].RestTimeSeconds != "90 → A2, hold" {
		t.Fatalf("quoted field split on delimiter: %q", exercises[0].RestTimeSeconds)
	}
}

func TestSplitLineEscapedQuote(t *testing.T) {
	fields := splitLine(`a,"say ""hi"", then rest",c`)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", len(fields), fields)
	}
	if fields[1] != `say "hi", then rest` {
		t.Fatalf("escaped quote mishandled: %q", fields[1])
	}
}

func TestParseDaySaturdayRounds(t *testing.T) {
	data := []byte("Station_Number,Exercise_Name,Primary_Muscle_Target,Rounds_Total,Target_Reps_Per_45sec,Weight_Range_kg,Fat_Burn_Strategy,Work_Duration_Seconds\n" +
		"1,Burpees,Full Body,3 rounds,15,Body Weight,Max effort,45\n" +
		"2,Box Jumps,Legs,whatever,10,Body Weight,Explode up,45\n")

	exercises, err := ParseDay(6, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(exercises))
	}

	if exercises[0].Sets != 3 {
		t.Fatalf(`"3 rounds" should parse to 3 sets, got %d`, exercises[0].Sets)
	}
	if exercises[0].ExerciseOrder != "1" {
		t.Fatal("Station_Number should map to the order label")
	}
	if exercises[0].RoundsTotal != "3 rounds" {
		t.Fatalf("raw rounds value should be retained, got %q", exercises[0].RoundsTotal)
	}
	if exercises[0].FatBurnStrategy != "Max effort" || exercises[0].WorkDurationSeconds != "45" {
		t.Fatalf("day 6 focus fields missing: %+v", exercises[0])
	}

	// Unparseable rounds default to 3 instead of dropping the row.
	if exercises[1].Sets != 3 {
		t.Fatalf("unparseable rounds should default to 3, got %d", exercises[1].Sets)
	}
}

func TestParseDaySunday(t *testing.T) {
	data := []byte("Exercise_Order,Exercise_Name,Primary_Muscle_Target,Sets,Reps,Band_Resistance,Setup_Instructions,Bodyweight_Alternative,Home_Workout_Benefits,Progression_Tips\n" +
		"A1,Band Rows,Back,3,15-20,Medium,Anchor at chest height,Inverted Rows,No gym needed,Move to heavy band\n")

	exercises, err := ParseDay(7, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(exercises))
	}

	ex := exercises[0]
	if ex.WeightRangeKg != "Medium" {
		t.Fatal("Band_Resistance should map to the intensity field")
	}
	if ex.MachineSetup != "Anchor at chest height" {
		t.Fatal("Setup_Instructions should map to the setup field")
	}
	if ex.MachineAlternative != "Inverted Rows" {
		t.Fatal("Bodyweight_Alternative should map to the machine alternative field")
	}
	if ex.HomeWorkoutBenefits != "No gym needed" || ex.ProgressionTips != "Move to heavy band" {
		t.Fatalf("day 7 focus fields missing: %+v", ex)
	}
}

func TestParseDayBlankLinesAndCRLF(t *testing.T) {
	data := []byte(mondayHeader + "\r\n" +
		"\r\n" +
		"A1,Lat Pulldown,Lats,3,12-15,45-65\r\n" +
		"\r\n")

	exercises, err := ParseDay(1, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(exercises))
	}
}

func TestParseDayMissingColumnIsAbsent(t *testing.T) {
	// No Sets column at all: every row lacks a required field.
	data := []byte("Exercise_Order,Exercise_Name,Primary_Muscle_Target,Reps,Weight_Range_kg\n" +
		"A1,Lat Pulldown,Lats,12-15,45-65\n")

	exercises, err := ParseDay(1, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 0 {
		t.Fatalf("rows without a sets column should be dropped, got %d", len(exercises))
	}
}

func TestParseDayUnknownDay(t *testing.T) {
	if _, err := ParseDay(8, []byte(mondayHeader)); err == nil {
		t.Fatal("expected error for day out of range")
	}
}

func TestLoadWeek(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "MONDAY.csv", mondayHeader+"\nA1,Lat Pulldown,Lats,3,12-15,45-65\n")
	writeFile(t, dir, "TUESDAY.csv", "Exercise_Order,Exercise_Name,Primary_Muscle_Target,Sets,Reps,Weight_Range_kg,Chest_Development_Focus\n"+
		"A1,Treadmill,Cardio,1,10 min,0,Endurance\n")

	exercises, err := LoadWeek(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(exercises))
	}
	if exercises[0].DayOfWeek != 1 || exercises[1].DayOfWeek != 2 {
		t.Fatalf("unexpected days: %d %d", exercises[0].DayOfWeek, exercises[1].DayOfWeek)
	}
	if exercises[1].ChestDevelopmentFocus != "Endurance" {
		t.Fatal("day 2 focus column should be mapped")
	}
}

func TestLoadWeekMissingMondayFallsBack(t *testing.T) {
	dir := t.TempDir()
	// Only Tuesday present; Monday substitutes the default subset.
	writeFile(t, dir, "TUESDAY.csv", "Exercise_Order,Exercise_Name,Primary_Muscle_Target,Sets,Reps,Weight_Range_kg\n"+
		"A1,Treadmill,Cardio,1,10 min,0\n")

	exercises, err := LoadWeek(dir)
	if err != nil {
		t.Fatal(err)
	}

	defaults := DefaultMonday()
	var monday []string
	for _, ex := range exercises {
		if ex.DayOfWeek == 1 {
			monday = append(monday, ex.Name)
		}
	}
	if len(monday) != len(defaults) {
		t.Fatalf("expected %d default Monday exercises, got %d", len(defaults), len(monday))
	}
	if monday[0] != defaults[0].Name {
		t.Fatalf("expected default Monday plan, got %q", monday[0])
	}
}

func TestLoadWeekMissingOtherDayContributesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "MONDAY.csv", mondayHeader+"\nA1,Lat Pulldown,Lats,3,12-15,45-65\n")

	exercises, err := LoadWeek(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, ex := range exercises {
		if ex.DayOfWeek != 1 {
			t.Fatalf("missing days must contribute zero records, found day %d", ex.DayOfWeek)
		}
	}
}

func TestLoadWeekMissingDir(t *testing.T) {
	if _, err := LoadWeek(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
