package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DB   DBConfig   `toml:"database"`
	Plan PlanConfig `toml:"plan"`
}

type DBConfig struct {
	// ConnectionString is either a local file path or a libsql://, ws://,
	// wss:// or https:// URL for a remote database.
	ConnectionString string `toml:"connection_string"`
}

type PlanConfig struct {
	// Dir holds the seven per-day tabular files (MONDAY.csv .. SUNDAY.csv).
	Dir string `toml:"dir"`
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "gymweek")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the configuration from the config file. A missing file is
// not an error, defaults apply; environment variables override either way.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.DB.ConnectionString == "" {
		cfg.DB.ConnectionString = filepath.Join(filepath.Dir(path), "gymweek.db")
	}
	if cfg.Plan.Dir == "" {
		cfg.Plan.Dir = filepath.Join(filepath.Dir(path), "plans")
	}

	if v := os.Getenv("GYMWEEK_DB"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("GYMWEEK_PLAN_DIR"); v != "" {
		cfg.Plan.Dir = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "./local.db"
		cfg.Plan.Dir = "./plans"
	}

	return &cfg, nil
}
