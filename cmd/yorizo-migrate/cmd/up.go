package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		db, target, _, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		logger.Info("applying migrations", "dialect", target.Dialect)
		if err := database.MigrateWithLogger(db, target.Dialect, logger); err != nil {
			return err
		}

		version, err := database.GetLatestSchemaVersion(db)
		if err != nil {
			return err
		}
		logger.Info("database is up to date", "version", version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
}
