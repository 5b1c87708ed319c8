package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Storage is the shared handle over the plan and progress tables. Construct
// it once per process and pass it to every consumer.
type Storage struct {
	DB *sql.DB

	seedOnce sync.Once
}

// New opens the database behind the given connection string. Remote libsql
// URLs go through the libsql driver, everything else is treated as a local
// SQLite file path.
func New(connectionString string) (*Storage, error) {
	var (
		db  *sql.DB
		err error
	)

	if isRemote(connectionString) {
		db, err = sql.Open("libsql", connectionString)
		if err != nil {
			return nil, fmt.Errorf("Failed to open db %s: %w", connectionString, err)
		}
	} else {
		if connectionString != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(connectionString), 0o755); err != nil {
				return nil, fmt.Errorf("Failed to create db directory: %w", err)
			}
		}
		db, err = sql.Open("sqlite", connectionString)
		if err != nil {
			return nil, fmt.Errorf("Failed to open db %s: %w", connectionString, err)
		}
		db.SetMaxOpenConns(1)

		for _, p := range []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA foreign_keys=ON",
			"PRAGMA busy_timeout=5000",
		} {
			if _, err := db.Exec(p); err != nil {
				db.Close()
				return nil, fmt.Errorf("Failed to exec pragma %q: %w", p, err)
			}
		}
	}

	if err := initializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Storage, error) {
	return New(":memory:")
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isRemote(connectionString string) bool {
	for _, prefix := range []string{"libsql://", "ws://", "wss://", "http://", "https://"} {
		if strings.HasPrefix(connectionString, prefix) {
			return true
		}
	}
	return false
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS exercises (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            exercise_order TEXT NOT NULL,
            exercise_name TEXT NOT NULL,
            primary_muscle_target TEXT NOT NULL,
            sets INTEGER NOT NULL,
            reps TEXT NOT NULL,
            weight_range_kg TEXT NOT NULL,
            machine_setup TEXT NOT NULL DEFAULT '',
            rest_time_seconds TEXT NOT NULL DEFAULT '',
            machine_alternative TEXT NOT NULL DEFAULT '',
            free_weight_alternative TEXT NOT NULL DEFAULT '',
            form_cues TEXT NOT NULL DEFAULT '',
            back_fat_focus TEXT NOT NULL DEFAULT '',
            chest_development_focus TEXT NOT NULL DEFAULT '',
            calorie_burn_focus TEXT NOT NULL DEFAULT '',
            vtaper_core_focus TEXT NOT NULL DEFAULT '',
            definition_focus TEXT NOT NULL DEFAULT '',
            fat_burn_strategy TEXT NOT NULL DEFAULT '',
            work_duration_seconds TEXT NOT NULL DEFAULT '',
            rounds_total TEXT NOT NULL DEFAULT '',
            home_workout_benefits TEXT NOT NULL DEFAULT '',
            progression_tips TEXT NOT NULL DEFAULT '',
            day_of_week INTEGER NOT NULL
        );

        CREATE TABLE IF NOT EXISTS exercise_progress (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            exercise_id INTEGER NOT NULL,
            date TEXT NOT NULL,
            completed INTEGER NOT NULL
        );

        CREATE UNIQUE INDEX IF NOT EXISTS idx_progress_exercise_date
            ON exercise_progress(exercise_id, date);

        CREATE TABLE IF NOT EXISTS seed_runs (
            id TEXT PRIMARY KEY,
            source TEXT NOT NULL,
            inserted INTEGER NOT NULL,
            created_at TEXT NOT NULL
        );
    `)
	return err
}
