// Package database handles database connections and migrations.
package database

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/yochanchan/yorizo-back/internal/database/migrations"
)

// tlsConfigName is the go-sql-driver TLS profile registered for MySQL targets.
const tlsConfigName = "yorizo"

// Open connects to the target database.
// MySQL connections always use TLS, with the CA bundle from sslCAPath when
// given and the system certificate pool otherwise. SQLite targets get
// foreign keys enabled.
func Open(target Target, sslCAPath string) (*sql.DB, error) {
	switch target.Dialect {
	case DialectMySQL:
		return openMySQL(target, sslCAPath)
	case DialectSQLite:
		return openSQLite(target)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", target.Dialect)
	}
}

func openMySQL(target Target, sslCAPath string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MySQL DSN: %w", err)
	}

	if err := registerMySQLTLS(sslCAPath); err != nil {
		return nil, err
	}
	cfg.TLSConfig = tlsConfigName

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func openSQLite(target Target) (*sql.DB, error) {
	db, err := sql.Open("sqlite", target.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection; pin the pool to one.
	if target.DSN == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// registerMySQLTLS installs the TLS profile used by MySQL connections.
// Re-registration with the same name simply overwrites the previous profile.
func registerMySQLTLS(caPath string) error {
	var pool *x509.CertPool

	if caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return fmt.Errorf("failed to read DB_SSL_CA file: %w", err)
		}
		pool = x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return fmt.Errorf("no certificates found in %s", caPath)
		}
	} else {
		var err error
		pool, err = x509.SystemCertPool()
		if err != nil {
			return fmt.Errorf("failed to load system certificate pool: %w", err)
		}
	}

	return mysql.RegisterTLSConfig(tlsConfigName, &tls.Config{RootCAs: pool})
}

func formatMySQLDSN(user, password, host, port, dbName string) string {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Collation = "utf8mb4_unicode_ci"
	return cfg.FormatDSN()
}

// Migrate runs all pending database migrations.
func Migrate(db *sql.DB, dialect Dialect) error {
	return MigrateWithLogger(db, dialect, nil)
}

// MigrateWithLogger runs all pending database migrations with a custom logger.
func MigrateWithLogger(db *sql.DB, dialect Dialect, logger *slog.Logger) error {
	return migrations.Run(db, string(dialect), logger)
}

// Rollback reverts the most recent applied migrations, newest first.
func Rollback(db *sql.DB, dialect Dialect, logger *slog.Logger, steps int) error {
	return migrations.Rollback(db, string(dialect), logger, steps)
}

// EnsureLedger creates the migration ledger table if it doesn't exist yet.
// Read-only commands call this so they work against a fresh database.
func EnsureLedger(db *sql.DB, dialect Dialect) error {
	return migrations.EnsureLedger(db, string(dialect))
}

// Stamp records migrations up to target as applied without executing them.
func Stamp(db *sql.DB, dialect Dialect, target string) error {
	return migrations.Stamp(db, string(dialect), target)
}

// GetAppliedMigrations returns information about applied migrations.
func GetAppliedMigrations(db *sql.DB) ([]migrations.AppliedMigration, error) {
	return migrations.GetAppliedMigrations(db)
}

// GetPendingMigrations returns migrations that haven't been applied yet.
func GetPendingMigrations(db *sql.DB) ([]migrations.Migration, error) {
	return migrations.GetPendingMigrations(db)
}

// GetLatestSchemaVersion returns the newest applied migration version.
func GetLatestSchemaVersion(db *sql.DB) (string, error) {
	return migrations.GetLatestVersion(db)
}

// GetMigrationCount returns the total number of applied migrations.
func GetMigrationCount(db *sql.DB) (int, error) {
	return migrations.GetMigrationCount(db)
}
