package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/database"
	"github.com/yochanchan/yorizo-back/internal/seed"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local SQLite database and rebuild it",
	Long: `Reset removes the SQLite database file, re-applies every migration on
a fresh file and loads the demo seed. It refuses to run against MySQL
or an in-memory database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, target, err := resolveTarget()
		if err != nil {
			return err
		}
		if target.Dialect != database.DialectSQLite {
			return fmt.Errorf("reset only works on SQLite databases, got %s", target.Dialect)
		}
		if target.DSN == ":memory:" {
			return fmt.Errorf("reset needs a file-backed database")
		}

		if err := os.Remove(target.DSN); err == nil {
			logger.Info("removed database file", "path", target.DSN)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", target.DSN, err)
		} else {
			logger.Info("no database file to remove", "path", target.DSN)
		}

		db, err := database.Open(target, cfg.DBSSLCA)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.MigrateWithLogger(db, target.Dialect, logger); err != nil {
			return err
		}

		if cfg.DisableDemoSeed {
			logger.Info("DISABLE_DEMO_SEED is set; skipping demo seed")
			return nil
		}
		return seed.Run(context.Background(), db, logger)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
