package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, target, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.EnsureLedger(db, target.Dialect); err != nil {
			return err
		}

		version, err := database.GetLatestSchemaVersion(db)
		if err != nil {
			return err
		}
		pending, err := database.GetPendingMigrations(db)
		if err != nil {
			return err
		}

		if version == "" {
			version = "(none)"
		}
		fmt.Printf("Dialect:         %s\n", target.Dialect)
		fmt.Printf("Current version: %s\n", version)
		fmt.Printf("Pending:         %d\n", len(pending))
		for _, m := range pending {
			fmt.Printf("  %s  %s\n", m.Version, m.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
