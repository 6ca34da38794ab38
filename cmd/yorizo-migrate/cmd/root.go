// Package cmd implements the yorizo-migrate CLI.
package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/yochanchan/yorizo-back/internal/config"
	"github.com/yochanchan/yorizo-back/internal/database"
	"github.com/yochanchan/yorizo-back/internal/logging"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "yorizo-migrate",
	Short: "Schema migrations for the yorizo consultation backend",
	Long: `yorizo-migrate manages the database schema for the yorizo backend.

Migrations are tracked in a schema_migrations ledger and applied in
version order, each in its own transaction. The target database comes
from DATABASE_URL / DB_* environment variables or the --database-url
flag; local environments (APP_ENV=local|dev|development) always use
SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL (overrides DATABASE_URL and DB_* variables)")
}

// resolveTarget loads configuration and resolves the database target
// without opening a connection.
func resolveTarget() (*config.Config, database.Target, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, database.Target{}, err
	}

	rawURL := databaseURL
	if rawURL == "" {
		rawURL, err = cfg.ResolveDatabaseURL()
		if err != nil {
			return nil, database.Target{}, err
		}
	}

	target, err := database.ParseURL(rawURL)
	if err != nil {
		return nil, database.Target{}, fmt.Errorf("failed to parse database URL: %w", err)
	}
	return cfg, target, nil
}

// openDatabase resolves the target and opens a connection to it.
func openDatabase() (*sql.DB, database.Target, *config.Config, error) {
	cfg, target, err := resolveTarget()
	if err != nil {
		return nil, database.Target{}, nil, err
	}

	db, err := database.Open(target, cfg.DBSSLCA)
	if err != nil {
		return nil, database.Target{}, nil, err
	}
	return db, target, cfg, nil
}

func newLogger() *slog.Logger {
	return logging.New()
}
