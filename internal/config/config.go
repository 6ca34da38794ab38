// Package config handles application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultSQLiteURL is the fallback database for local development.
const DefaultSQLiteURL = "sqlite:///./yorizo.db"

// Config holds all application configuration.
type Config struct {
	// Environment name: local/dev/development force SQLite,
	// production/prod/staging/azure require explicit DB settings.
	AppEnv string

	// Database
	DatabaseURL string // explicit connection URL, wins over DB_* parts
	DBHost      string
	DBPort      int
	DBUsername  string
	DBPassword  string
	DBName      string
	DBSSLCA     string // path to a CA bundle for MySQL TLS

	// Seed
	DisableDemoSeed bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", ""))),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnvInt("DB_PORT", 3306),
		// NOTE: Azure App Service cannot use an app setting named "username";
		// the environment variable is DB_USERNAME.
		DBUsername: getEnv("DB_USERNAME", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		// Azure production DB name defaults to "yorizo" when not provided explicitly.
		DBName:  getEnv("DB_NAME", "yorizo"),
		DBSSLCA: getEnv("DB_SSL_CA", ""),

		// Any non-empty value disables the demo seed.
		DisableDemoSeed: getEnv("DISABLE_DEMO_SEED", "") != "",
	}

	return cfg, nil
}

// IsLocal returns true when APP_ENV pins the app to the local SQLite database.
func (c *Config) IsLocal() bool {
	switch c.AppEnv {
	case "local", "dev", "development":
		return true
	}
	return false
}

// IsProduction returns true for production-like environments.
func (c *Config) IsProduction() bool {
	switch c.AppEnv {
	case "production", "prod", "staging", "azure":
		return true
	}
	return false
}

// ResolveDatabaseURL picks the effective database URL:
//  1. local environments always use SQLite, avoiding forced MySQL+TLS
//  2. an explicit DATABASE_URL wins
//  3. complete DB_* settings assemble a MySQL URL
//  4. production environments without DB settings fail loudly
//  5. everything else falls back to SQLite
func (c *Config) ResolveDatabaseURL() (string, error) {
	if c.IsLocal() {
		return DefaultSQLiteURL, nil
	}

	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}

	if c.DBUsername != "" && c.DBPassword != "" && c.DBName != "" {
		return fmt.Sprintf("mysql://%s:%s@%s:%d/%s",
			c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBName), nil
	}

	if c.IsProduction() {
		return "", fmt.Errorf("APP_ENV is set to %s but DB configuration is missing", c.AppEnv)
	}

	return DefaultSQLiteURL, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
