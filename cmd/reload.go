package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reloadCmd is an administrative refresh: it re-parses every source file,
// wipes the plan table and inserts the fresh records. Progress marks are
// untouched. Not part of normal day-to-day use.
var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Re-parse the plan sources and replace the stored plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		inserted, err := st.Reload(cfg.Plan.Dir)
		if err != nil {
			return fmt.Errorf("Failed to reload plan: %w", err)
		}

		fmt.Printf("✅ Reloaded %d exercises from %s\n", inserted, cfg.Plan.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reloadCmd)
}
