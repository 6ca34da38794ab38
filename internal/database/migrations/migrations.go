// Package migrations handles database schema migrations.
// Migrations are versioned with zero-padded revision ids (e.g. "0005") and
// tracked in a schema_migrations ledger table so each migration runs exactly
// once per database. Statements can differ per dialect: the schema targets
// MySQL (utf8mb4) in production and SQLite for local development and tests.
//
// Migration files are named NNNN-description.go and register themselves from
// init(). Example: 0005-booking-status.go
package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// Dialect names accepted by Run and Rollback.
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
)

// ErrOutOfOrder is returned when a pending migration sorts before an already
// applied one. Applying it would leave environments with diverging schema
// histories, so the run refuses instead.
var ErrOutOfOrder = errors.New("pending migration is older than an applied migration")

// ExecError reports a migration statement that failed to execute.
// The ledger stays consistent with the last successfully applied migration.
type ExecError struct {
	Version   string
	Statement string
	Err       error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("migration %s failed: %v\n%s", e.Version, e.Err, e.Statement)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Statements holds the SQL bodies of a migration. Common runs on every
// dialect, followed by the dialect-specific list. A dialect whose combined
// list is empty is a recorded no-op (e.g. charset changes on SQLite).
type Statements struct {
	Common []string
	MySQL  []string
	SQLite []string
}

// For returns the statements to execute for a dialect, in order.
func (s Statements) For(dialect string) []string {
	stmts := make([]string, 0, len(s.Common)+len(s.MySQL)+len(s.SQLite))
	stmts = append(stmts, s.Common...)
	switch dialect {
	case DialectMySQL:
		stmts = append(stmts, s.MySQL...)
	case DialectSQLite:
		stmts = append(stmts, s.SQLite...)
	}
	return stmts
}

// Migration represents a single database migration.
type Migration struct {
	// Version is a zero-padded revision id (e.g. "0005") used for ordering
	// and ledger tracking.
	Version     string
	Description string // Human-readable description
	Up          Statements
	Down        Statements
}

// registry holds all registered migrations.
var registry []Migration

// Register adds a migration to the registry.
// Called by init() functions in individual migration files.
func Register(m Migration) {
	registry = append(registry, m)
}

// Run executes all pending migrations in version order.
// Creates the schema_migrations ledger table if it doesn't exist.
// Running again once everything is applied is a no-op.
func Run(db *sql.DB, dialect string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := EnsureLedger(db, dialect); err != nil {
		return err
	}

	applied, err := getAppliedVersions(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	sort.Slice(registry, func(i, j int) bool {
		return registry[i].Version < registry[j].Version
	})

	latestApplied := ""
	for version := range applied {
		if version > latestApplied {
			latestApplied = version
		}
	}

	for _, m := range registry {
		if applied[m.Version] {
			continue
		}
		if latestApplied != "" && m.Version < latestApplied {
			return fmt.Errorf("migration %s (%s) sorts before applied version %s: %w",
				m.Version, m.Description, latestApplied, ErrOutOfOrder)
		}

		logger.Info("running migration", "version", m.Version, "description", m.Description)

		if err := runMigration(db, dialect, m); err != nil {
			return err
		}
		latestApplied = m.Version

		logger.Info("migration completed", "version", m.Version)
	}

	return nil
}

// Rollback reverts up to steps applied migrations, newest first, removing
// their ledger rows. Migrations without Down statements for the dialect are
// still removed from the ledger (recorded no-ops roll back to no-ops).
func Rollback(db *sql.DB, dialect string, logger *slog.Logger, steps int) error {
	if logger == nil {
		logger = slog.Default()
	}
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}

	if err := EnsureLedger(db, dialect); err != nil {
		return err
	}

	appliedList, err := GetAppliedMigrations(db)
	if err != nil {
		return err
	}

	byVersion := make(map[string]Migration, len(registry))
	for _, m := range registry {
		byVersion[m.Version] = m
	}

	for i := len(appliedList) - 1; i >= 0 && steps > 0; i, steps = i-1, steps-1 {
		entry := appliedList[i]
		m, ok := byVersion[entry.Version]
		if !ok {
			return fmt.Errorf("applied migration %s is not registered; cannot roll back", entry.Version)
		}

		logger.Info("rolling back migration", "version", m.Version, "description", m.Description)

		if err := rollbackMigration(db, dialect, m); err != nil {
			return err
		}

		logger.Info("rollback completed", "version", m.Version)
	}

	return nil
}

// Stamp records all registered migrations up to and including target as
// applied without executing their bodies. Use it to adopt a database whose
// schema was reconciled by hand. Target "head" stamps everything.
func Stamp(db *sql.DB, dialect, target string) error {
	if err := EnsureLedger(db, dialect); err != nil {
		return err
	}

	applied, err := getAppliedVersions(db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	sort.Slice(registry, func(i, j int) bool {
		return registry[i].Version < registry[j].Version
	})

	if target != "head" {
		found := false
		for _, m := range registry {
			if m.Version == target {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown migration version %q", target)
		}
	}

	for _, m := range registry {
		if target != "head" && m.Version > target {
			break
		}
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(
			"INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)",
			m.Version, m.Description, time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to stamp migration %s: %w", m.Version, err)
		}
	}

	return nil
}

// EnsureLedger creates the schema_migrations tracking table if needed.
func EnsureLedger(db *sql.DB, dialect string) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TEXT NOT NULL
		)`
	if dialect == DialectMySQL {
		ddl = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(64) PRIMARY KEY,
			description VARCHAR(255) NOT NULL,
			applied_at VARCHAR(64) NOT NULL
		)`
	}
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// getAppliedVersions returns a map of applied migration versions.
func getAppliedVersions(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// runMigration executes a single migration within a transaction.
// MySQL commits DDL implicitly, so a mid-migration failure there can leave
// partial schema; the ledger row is only written after every statement
// succeeded, matching the halt-and-inspect recovery model.
func runMigration(db *sql.DB, dialect string, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.Up.For(dialect) {
		if _, err := tx.Exec(stmt); err != nil {
			// Handle expected errors gracefully
			if isExpectedError(err, stmt) {
				continue
			}
			return &ExecError{Version: m.Version, Statement: stmt, Err: err}
		}
	}

	// Record migration
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)",
		m.Version, m.Description, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// rollbackMigration executes a migration's Down statements and deletes its
// ledger row within a transaction.
func rollbackMigration(db *sql.DB, dialect string, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.Down.For(dialect) {
		if _, err := tx.Exec(stmt); err != nil {
			if isExpectedError(err, stmt) {
				continue
			}
			return &ExecError{Version: m.Version, Statement: stmt, Err: err}
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_migrations WHERE version = ?", m.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	return tx.Commit()
}

// isExpectedError checks if an error is expected and can be ignored.
// These come from re-runnable DDL on engines without IF NOT EXISTS support
// for the statement form in question.
func isExpectedError(err error, stmt string) bool {
	errStr := strings.ToLower(err.Error())

	// Duplicate column from ALTER TABLE ADD COLUMN
	// (SQLite: "duplicate column name", MySQL error 1060: "Duplicate column name")
	if strings.Contains(errStr, "duplicate column") {
		return true
	}

	upper := strings.ToUpper(strings.TrimSpace(stmt))
	createsIndex := strings.HasPrefix(upper, "CREATE INDEX") || strings.HasPrefix(upper, "CREATE UNIQUE INDEX")

	// Index already exists (MySQL error 1061: "Duplicate key name")
	if createsIndex && (strings.Contains(errStr, "duplicate key name") || strings.Contains(errStr, "already exists")) {
		return true
	}

	// Table already exists (MySQL error 1050)
	if strings.Contains(errStr, "already exists") && strings.Contains(upper, "CREATE TABLE") {
		return true
	}

	return false
}

// GetAppliedMigrations returns info about applied migrations, oldest first.
func GetAppliedMigrations(db *sql.DB) ([]AppliedMigration, error) {
	rows, err := db.Query("SELECT version, description, applied_at FROM schema_migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applied []AppliedMigration
	for rows.Next() {
		var m AppliedMigration
		var appliedAt string
		if err := rows.Scan(&m.Version, &m.Description, &appliedAt); err != nil {
			return nil, err
		}
		m.AppliedAt, _ = time.Parse(time.RFC3339, appliedAt)
		applied = append(applied, m)
	}

	return applied, rows.Err()
}

// AppliedMigration represents a migration that has been applied.
type AppliedMigration struct {
	Version     string
	Description string
	AppliedAt   time.Time
}

// GetPendingMigrations returns migrations that haven't been applied yet.
func GetPendingMigrations(db *sql.DB) ([]Migration, error) {
	applied, err := getAppliedVersions(db)
	if err != nil {
		return nil, err
	}

	var pending []Migration
	for _, m := range registry {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	return pending, nil
}

// GetLatestVersion returns the latest applied migration version.
// Returns empty string if no migrations have been applied.
func GetLatestVersion(db *sql.DB) (string, error) {
	var version sql.NullString
	err := db.QueryRow("SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.String, nil
}

// GetMigrationCount returns the total number of applied migrations.
func GetMigrationCount(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// LatestRegisteredVersion returns the highest version in the registry, or ""
// when no migrations are registered. Used by the create scaffold command.
func LatestRegisteredVersion() string {
	latest := ""
	for _, m := range registry {
		if m.Version > latest {
			latest = m.Version
		}
	}
	return latest
}
