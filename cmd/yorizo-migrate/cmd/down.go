package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database"
)

var downSteps int

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		db, target, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Rollback(db, target.Dialect, logger, downSteps); err != nil {
			return err
		}

		version, err := database.GetLatestSchemaVersion(db)
		if err != nil {
			return err
		}
		if version == "" {
			version = "(none)"
		}
		logger.Info("rollback finished", "version", version)
		return nil
	},
}

func init() {
	downCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")
	rootCmd.AddCommand(downCmd)
}
