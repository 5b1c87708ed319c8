package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/misterclayt0n/gymweek/internal/models"
)

// dayFiles maps day-of-week (1=Monday..7=Sunday) to its source file name.
var dayFiles = map[int]string{
	1: "MONDAY.csv",
	2: "TUESDAY.csv",
	3: "WEDNESDAY.csv",
	4: "THURSDAY.csv",
	5: "FRIDAY.csv",
	6: "SATURDAY.csv",
	7: "SUNDAY.csv",
}

// schema maps one day's source column names onto the common Exercise shape.
// Each day of week ships a different header, so there are seven of these.
type schema struct {
	orderCol      string
	setsCol       string
	repsCol       string
	weightCol     string
	setupCol      string
	restCol       string
	machineAltCol string
	freeAltCol    string
	cuesCol       string

	// parseSets turns the raw sets column into a set count. Returns false
	// to drop the row.
	parseSets func(raw string) (int, bool)

	// extra fills the day-specific focus fields.
	extra func(get func(string) string, ex *models.Exercise)
}

// strictSets is the default set-count parser: non-numeric drops the row.
func strictSets(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// roundsSets handles the day-6 "3 rounds" format: strip the literal token
// and parse the remainder, defaulting to 3 when unparseable.
func roundsSets(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(raw, "rounds", "")))
	if err != nil || n <= 0 {
		return 3, true
	}
	return n, true
}

// weekdaySchema builds the shared day 1-5 column set, differing only in the
// focus column.
func weekdaySchema(extra func(get func(string) string, ex *models.Exercise)) schema {
	return schema{
		orderCol:      "Exercise_Order",
		setsCol:       "Sets",
		repsCol:       "Reps",
		weightCol:     "Weight_Range_kg",
		setupCol:      "Machine_Setup",
		restCol:       "Rest_Time_Seconds",
		machineAltCol: "Machine_Alternative",
		freeAltCol:    "Free_Weight_Alternative",
		cuesCol:       "Form_Cues",
		parseSets:     strictSets,
		extra:         extra,
	}
}

var daySchemas = map[int]schema{
	1: weekdaySchema(func(get func(string) string, ex *models.Exercise) {
		ex.BackFatFocus = get("Back_Fat_Focus")
	}),
	2: weekdaySchema(func(get func(string) string, ex *models.Exercise) {
		ex.ChestDevelopmentFocus = get("Chest_Development_Focus")
	}),
	3: weekdaySchema(func(get func(string) string, ex *models.Exercise) {
		ex.CalorieBurnFocus = get("Calorie_Burn_Focus")
	}),
	4: weekdaySchema(func(get func(string) string, ex *models.Exercise) {
		ex.VTaperCoreFocus = get("VTaper_Core_Focus")
	}),
	5: weekdaySchema(func(get func(string) string, ex *models.Exercise) {
		ex.DefinitionFocus = get("Definition_Focus")
	}),
	// Saturday is circuit training and uses stations and rounds instead of
	// ordered sets.
	6: {
		orderCol:      "Station_Number",
		setsCol:       "Rounds_Total",
		repsCol:       "Target_Reps_Per_45sec",
		weightCol:     "Weight_Range_kg",
		setupCol:      "Machine_Setup",
		restCol:       "Rest_Duration_Seconds",
		machineAltCol: "Machine_Alternative",
		freeAltCol:    "Free_Weight_Alternative",
		cuesCol:       "Form_Focus",
		parseSets:     roundsSets,
		extra: func(get func(string) string, ex *models.Exercise) {
			ex.FatBurnStrategy = get("Fat_Burn_Strategy")
			ex.WorkDurationSeconds = get("Work_Duration_Seconds")
			ex.RoundsTotal = get("Rounds_Total")
		},
	},
	// Sunday is a home band workout: no machines, band resistance instead of
	// a weight range.
	7: {
		orderCol:      "Exercise_Order",
		setsCol:       "Sets",
		repsCol:       "Reps",
		weightCol:     "Band_Resistance",
		setupCol:      "Setup_Instructions",
		restCol:       "Rest_Time_Seconds",
		machineAltCol: "Bodyweight_Alternative",
		freeAltCol:    "Free_Weight_Alternative",
		cuesCol:       "Form_Cues",
		parseSets:     strictSets,
		extra: func(get func(string) string, ex *models.Exercise) {
			ex.HomeWorkoutBenefits = get("Home_Workout_Benefits")
			ex.ProgressionTips = get("Progression_Tips")
		},
	},
}

// splitLine splits one delimiter-separated line, respecting quoted fields.
// A doubled quote inside a quoted field is an escaped literal quote;
// unquoted text is taken as-is. It never fails: malformed quoting just
// yields whatever fields fall out.
func splitLine(line string) []string {
	var (
		fields   []string
		sb       strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				sb.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ',':
			if inQuotes {
				sb.WriteByte(c)
			} else {
				fields = append(fields, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteByte(c)
		}
	}
	fields = append(fields, sb.String())
	return fields
}

// headerIndex maps column names of the header line to their positions.
func headerIndex(header string) map[string]int {
	idx := make(map[string]int)
	for i, name := range splitLine(header) {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// ParseDay parses raw tabular text for one day of week into exercise
// records. The first line is the header; rows missing a required field are
// skipped, a bad row never aborts the rest of the file.
func ParseDay(day int, data []byte) ([]models.Exercise, error) {
	sc, ok := daySchemas[day]
	if !ok {
		return nil, fmt.Errorf("No schema for day %d", day)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) == 0 {
		return nil, nil
	}
	idx := headerIndex(lines[0])

	var exercises []models.Exercise
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := splitLine(line)

		// Missing columns resolve to "", same as an empty field.
		get := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(cols) {
				return ""
			}
			return strings.TrimSpace(cols[i])
		}

		rawSets := get(sc.setsCol)
		if rawSets == "" {
			continue
		}
		sets, ok := sc.parseSets(rawSets)
		if !ok {
			continue
		}

		ex := models.Exercise{
			ExerciseOrder:         get(sc.orderCol),
			Name:                  get("Exercise_Name"),
			PrimaryMuscleTarget:   get("Primary_Muscle_Target"),
			Sets:                  sets,
			Reps:                  get(sc.repsCol),
			WeightRangeKg:         get(sc.weightCol),
			MachineSetup:          get(sc.setupCol),
			RestTimeSeconds:       get(sc.restCol),
			MachineAlternative:    get(sc.machineAltCol),
			FreeWeightAlternative: get(sc.freeAltCol),
			FormCues:              get(sc.cuesCol),
			DayOfWeek:             day,
		}
		sc.extra(get, &ex)

		if !ex.Valid() {
			continue
		}
		exercises = append(exercises, ex)
	}

	return exercises, nil
}

// LoadWeek parses all seven day files from dir. Days fail independently: an
// unreadable day 1 substitutes the default Monday subset, any other
// unreadable day simply contributes no records. Only an unusable directory
// is reported as an error.
func LoadWeek(dir string) ([]models.Exercise, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("Plan directory not usable: %w", err)
	}

	var exercises []models.Exercise
	for day := 1; day <= 7; day++ {
		data, err := os.ReadFile(filepath.Join(dir, dayFiles[day]))
		if err != nil {
			if day == 1 {
				log.Warnf("falling back to default Monday plan: %s", err)
				exercises = append(exercises, DefaultMonday()...)
			} else {
				log.Warnf("skipping day %d: %s", day, err)
			}
			continue
		}

		parsed, err := ParseDay(day, data)
		if err != nil {
			log.Warnf("skipping day %d: %s", day, err)
			continue
		}
		log.Debugf("parsed %d exercises for day %d", len(parsed), day)
		exercises = append(exercises, parsed...)
	}

	return exercises, nil
}
