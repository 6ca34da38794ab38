package seed

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/yochanchan/yorizo-back/internal/database/migrations"
	"github.com/yochanchan/yorizo-back/internal/repository"
)

func setupTestDB(t *testing.T, migrate bool) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if migrate {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if err := migrations.Run(db, migrations.DialectSQLite, logger); err != nil {
			t.Fatalf("Failed to run migrations: %v", err)
		}
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_SeedsDemoData(t *testing.T) {
	db := setupTestDB(t, true)
	ctx := context.Background()

	if err := Run(ctx, db, quietLogger()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	repos := repository.NewRepositories(db)

	user, err := repos.User.GetByID(ctx, demoUserID)
	if err != nil {
		t.Fatalf("GetByID(demo-user) error: %v", err)
	}
	if user == nil {
		t.Fatal("demo user not created")
	}

	company, err := repos.Company.GetByID(ctx, demoUserID)
	if err != nil {
		t.Fatalf("GetByID(company) error: %v", err)
	}
	if company == nil {
		t.Fatal("demo company not created")
	}
	if company.CompanyName == nil || *company.CompanyName != "デモ株式会社" {
		t.Errorf("CompanyName = %v", company.CompanyName)
	}

	alias, err := repos.Company.GetByID(ctx, aliasCompanyID)
	if err != nil {
		t.Fatalf("GetByID(alias) error: %v", err)
	}
	if alias == nil {
		t.Fatal("alias company not created")
	}
	if alias.CompanyName == nil || *alias.CompanyName != *company.CompanyName {
		t.Error("alias company should mirror the demo company")
	}

	for _, companyID := range []string{demoUserID, aliasCompanyID} {
		stmts, err := repos.FinancialStatement.GetByCompanyID(ctx, companyID)
		if err != nil {
			t.Fatalf("GetByCompanyID(%s) error: %v", companyID, err)
		}
		if len(stmts) != 3 {
			t.Errorf("company %s has %d statements, want 3", companyID, len(stmts))
		}
	}

	convs, err := repos.Conversation.ListByUserID(ctx, demoUserID)
	if err != nil {
		t.Fatalf("ListByUserID() error: %v", err)
	}
	if len(convs) != 2 {
		t.Fatalf("%d conversations, want 2", len(convs))
	}
	for _, conv := range convs {
		msgs, err := repos.Conversation.ListMessages(ctx, conv.ID)
		if err != nil {
			t.Fatalf("ListMessages() error: %v", err)
		}
		if len(msgs) != 3 {
			t.Errorf("conversation %q has %d messages, want 3", *conv.Title, len(msgs))
		}
	}

	memory, err := repos.Memory.GetByUserID(ctx, demoUserID)
	if err != nil {
		t.Fatalf("GetByUserID(memory) error: %v", err)
	}
	if memory == nil {
		t.Fatal("memory not created")
	}
	if memory.RememberedFacts == nil || *memory.RememberedFacts != "テイクアウト導入済み" {
		t.Errorf("RememberedFacts = %v", memory.RememberedFacts)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := setupTestDB(t, true)
	ctx := context.Background()

	if err := Run(ctx, db, quietLogger()); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	if err := Run(ctx, db, quietLogger()); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	var users, companies, stmts, convs, msgs int
	counts := map[string]*int{
		"users": &users, "companies": &companies, "financial_statements": &stmts,
		"conversations": &convs, "messages": &msgs,
	}
	for table, dst := range counts {
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(dst); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
	}

	if users != 1 || companies != 2 || stmts != 6 || convs != 2 || msgs != 6 {
		t.Errorf("row counts after double seed: users=%d companies=%d statements=%d conversations=%d messages=%d",
			users, companies, stmts, convs, msgs)
	}
}

func TestRun_SkipsWhenNotMigrated(t *testing.T) {
	db := setupTestDB(t, false)

	// No users table yet; the seed logs a warning and does nothing.
	if err := Run(context.Background(), db, quietLogger()); err != nil {
		t.Fatalf("Run() error on unmigrated database: %v", err)
	}
}
