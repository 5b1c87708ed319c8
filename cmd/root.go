package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/gymweek/internal/config"
	"github.com/misterclayt0n/gymweek/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "gymweek",
	Short: "Weekly gym plan and workout completion tracking from the terminal",
}

func Execute() error {
	return rootCmd.Execute()
}

// openStorage loads the configuration, opens the store once for this process
// and runs the one-time seed. Every command goes through here, so the handle
// is always seeded before the first query.
func openStorage() (*storage.Storage, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("Failed to load config: %w", err)
	}

	st, err := storage.New(cfg.DB.ConnectionString)
	if err != nil {
		return nil, nil, err
	}

	st.EnsureSeeded(cfg.Plan.Dir)
	return st, cfg, nil
}
