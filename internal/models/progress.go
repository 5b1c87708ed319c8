package models

// ExerciseProgress is one completion mark, uniquely keyed by
// (ExerciseID, Date). An upsert replaces the whole row.
type ExerciseProgress struct {
	ID         int64  `json:"id"`
	ExerciseID int64  `json:"exercise_id"`
	Date       string `json:"date"` // ISO-8601 yyyy-MM-dd.
	Completed  bool   `json:"completed"`
}

// DailySummary aggregates progress rows for a single date. It is derived,
// never stored.
type DailySummary struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completed_count"`
	TotalCount     int    `json:"total_count"`
}

// SeedRun records one seeding or reload of the plan store.
type SeedRun struct {
	ID        string `json:"id"`
	Source    string `json:"source"` // "csv" or "fallback".
	Inserted  int    `json:"inserted"`
	CreatedAt string `json:"created_at"`
}
