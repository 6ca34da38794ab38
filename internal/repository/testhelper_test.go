package repository

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/yochanchan/yorizo-back/internal/database/migrations"
	"github.com/yochanchan/yorizo-back/internal/models"
)

// setupTestDB creates an in-memory database migrated to head.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := migrations.Run(db, migrations.DialectSQLite, logger); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// createTestUser inserts a user and returns its ID.
func createTestUser(t *testing.T, repos *Repositories) string {
	t.Helper()

	user := &models.User{Nickname: strPtr("test-user")}
	if err := repos.User.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// createTestExpert inserts an expert directly and returns its ID.
func createTestExpert(t *testing.T, db *sql.DB) string {
	t.Helper()

	const id = "expert-1"
	if _, err := db.Exec("INSERT INTO experts (id, name) VALUES (?, ?)", id, "Test Expert"); err != nil {
		t.Fatalf("Failed to create test expert: %v", err)
	}
	return id
}
