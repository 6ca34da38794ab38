package migrations

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_AppliesAllMigrations(t *testing.T) {
	db := setupTestDB(t)

	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	count, err := GetMigrationCount(db)
	if err != nil {
		t.Fatalf("GetMigrationCount() error: %v", err)
	}
	if count != len(registry) {
		t.Errorf("applied %d migrations, want %d", count, len(registry))
	}

	latest, err := GetLatestVersion(db)
	if err != nil {
		t.Fatalf("GetLatestVersion() error: %v", err)
	}
	if latest != LatestRegisteredVersion() {
		t.Errorf("latest = %q, want %q", latest, LatestRegisteredVersion())
	}

	// Spot-check that the schema actually exists.
	for _, table := range []string{"users", "conversations", "messages", "homework_tasks", "rag_documents", "conversation_checkpoints"} {
		if _, err := db.Exec("SELECT COUNT(*) FROM " + table); err != nil {
			t.Errorf("table %s missing after migration: %v", table, err)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	count, err := GetMigrationCount(db)
	if err != nil {
		t.Fatalf("GetMigrationCount() error: %v", err)
	}
	if count != len(registry) {
		t.Errorf("applied %d migrations after double run, want %d", count, len(registry))
	}
}

func TestRun_OutOfOrder(t *testing.T) {
	db := setupTestDB(t)

	// A ledger that already contains 0002 but not 0001 means 0001 would
	// apply out of order.
	if err := EnsureLedger(db, DialectSQLite); err != nil {
		t.Fatalf("EnsureLedger() error: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)",
		"0002", "Add homework_tasks table", "2026-01-01T00:00:00Z",
	); err != nil {
		t.Fatalf("seeding ledger: %v", err)
	}

	err := Run(db, DialectSQLite, quietLogger())
	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("Run() error = %v, want ErrOutOfOrder", err)
	}

	// The refused run must not have touched the ledger.
	count, err := GetMigrationCount(db)
	if err != nil {
		t.Fatalf("GetMigrationCount() error: %v", err)
	}
	if count != 1 {
		t.Errorf("ledger has %d rows after refused run, want 1", count)
	}
}

func TestRunMigration_ExecError(t *testing.T) {
	db := setupTestDB(t)
	if err := EnsureLedger(db, DialectSQLite); err != nil {
		t.Fatalf("EnsureLedger() error: %v", err)
	}

	bad := Migration{
		Version:     "9999",
		Description: "broken",
		Up: Statements{
			Common: []string{`CREATE TABLE valid_table (id INT)`, `THIS IS NOT SQL`},
		},
	}

	err := runMigration(db, DialectSQLite, bad)
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("runMigration() error = %v, want *ExecError", err)
	}
	if execErr.Version != "9999" {
		t.Errorf("ExecError.Version = %q, want %q", execErr.Version, "9999")
	}
	if execErr.Statement != "THIS IS NOT SQL" {
		t.Errorf("ExecError.Statement = %q", execErr.Statement)
	}

	// The failed migration must not be recorded, and the transaction must
	// have rolled the earlier statement back.
	count, err := GetMigrationCount(db)
	if err != nil {
		t.Fatalf("GetMigrationCount() error: %v", err)
	}
	if count != 0 {
		t.Errorf("ledger has %d rows after failed migration, want 0", count)
	}
	if _, err := db.Exec("SELECT COUNT(*) FROM valid_table"); err == nil {
		t.Error("valid_table survived the rolled-back migration")
	}
}

func TestRollback_StepsNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if err := Rollback(db, DialectSQLite, quietLogger(), 2); err != nil {
		t.Fatalf("Rollback() error: %v", err)
	}

	count, err := GetMigrationCount(db)
	if err != nil {
		t.Fatalf("GetMigrationCount() error: %v", err)
	}
	if count != len(registry)-2 {
		t.Errorf("ledger has %d rows after rollback, want %d", count, len(registry)-2)
	}

	latest, err := GetLatestVersion(db)
	if err != nil {
		t.Fatalf("GetLatestVersion() error: %v", err)
	}
	if latest != "0010" {
		t.Errorf("latest = %q after rolling back 2 steps, want %q", latest, "0010")
	}

	// Re-running brings the schema back to head.
	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("Run() after rollback error: %v", err)
	}
	latest, err = GetLatestVersion(db)
	if err != nil {
		t.Fatalf("GetLatestVersion() error: %v", err)
	}
	if latest != LatestRegisteredVersion() {
		t.Errorf("latest = %q after re-run, want %q", latest, LatestRegisteredVersion())
	}
}

func TestRollback_RejectsNonPositiveSteps(t *testing.T) {
	db := setupTestDB(t)
	if err := Rollback(db, DialectSQLite, quietLogger(), 0); err == nil {
		t.Error("Rollback(0) should fail")
	}
}

func TestStamp_RecordsWithoutExecuting(t *testing.T) {
	db := setupTestDB(t)

	if err := Stamp(db, DialectSQLite, "0003"); err != nil {
		t.Fatalf("Stamp() error: %v", err)
	}

	count, err := GetMigrationCount(db)
	if err != nil {
		t.Fatalf("GetMigrationCount() error: %v", err)
	}
	if count != 3 {
		t.Errorf("ledger has %d rows after stamping 0003, want 3", count)
	}

	// Stamp writes the ledger only; no schema is created.
	if _, err := db.Exec("SELECT COUNT(*) FROM users"); err == nil {
		t.Error("users table exists after stamp; stamp must not execute migration bodies")
	}
}

func TestStamp_Head(t *testing.T) {
	db := setupTestDB(t)

	if err := Stamp(db, DialectSQLite, "head"); err != nil {
		t.Fatalf("Stamp(head) error: %v", err)
	}

	latest, err := GetLatestVersion(db)
	if err != nil {
		t.Fatalf("GetLatestVersion() error: %v", err)
	}
	if latest != LatestRegisteredVersion() {
		t.Errorf("latest = %q, want %q", latest, LatestRegisteredVersion())
	}

	// A stamped-to-head database has nothing pending.
	pending, err := GetPendingMigrations(db)
	if err != nil {
		t.Fatalf("GetPendingMigrations() error: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("%d migrations pending after stamp head, want 0", len(pending))
	}
}

func TestStamp_UnknownVersion(t *testing.T) {
	db := setupTestDB(t)
	if err := Stamp(db, DialectSQLite, "4242"); err == nil {
		t.Error("Stamp with an unknown version should fail")
	}
}

func TestGetPendingMigrations_FreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	if err := EnsureLedger(db, DialectSQLite); err != nil {
		t.Fatalf("EnsureLedger() error: %v", err)
	}

	pending, err := GetPendingMigrations(db)
	if err != nil {
		t.Fatalf("GetPendingMigrations() error: %v", err)
	}
	if len(pending) != len(registry) {
		t.Errorf("%d migrations pending on a fresh database, want %d", len(pending), len(registry))
	}
	for i := 1; i < len(pending); i++ {
		if pending[i-1].Version >= pending[i].Version {
			t.Errorf("pending migrations out of order: %q before %q", pending[i-1].Version, pending[i].Version)
		}
	}
}

func TestEmojiSurvivesRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	const content = "売上について相談です \U0001F4C8\U0001F64F"

	if _, err := db.Exec("INSERT INTO users (id, nickname) VALUES (?, ?)", "u1", "demo"); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := db.Exec("INSERT INTO conversations (id, user_id) VALUES (?, ?)", "c1", "u1"); err != nil {
		t.Fatalf("insert conversation: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO messages (id, conversation_id, role, content) VALUES (?, ?, ?, ?)",
		"m1", "c1", "user", content,
	); err != nil {
		t.Fatalf("insert message: %v", err)
	}

	var got string
	if err := db.QueryRow("SELECT content FROM messages WHERE id = ?", "m1").Scan(&got); err != nil {
		t.Fatalf("select message: %v", err)
	}
	if got != content {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestBookingColumnsAddedByLaterMigrations(t *testing.T) {
	db := setupTestDB(t)
	if err := Run(db, DialectSQLite, quietLogger()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if _, err := db.Exec("INSERT INTO experts (id, name) VALUES (?, ?)", "e1", "Expert"); err != nil {
		t.Fatalf("insert expert: %v", err)
	}

	// status defaults to pending; conversation_id, meeting_url and
	// line_contact are nullable.
	if _, err := db.Exec(
		"INSERT INTO consultation_bookings (id, expert_id, date, time_slot, name) VALUES (?, ?, ?, ?, ?)",
		"b1", "e1", "2026-09-01", "10:00", "Taro",
	); err != nil {
		t.Fatalf("insert booking: %v", err)
	}

	var status string
	var conversationID, meetingURL, lineContact sql.NullString
	err := db.QueryRow(
		"SELECT status, conversation_id, meeting_url, line_contact FROM consultation_bookings WHERE id = ?", "b1",
	).Scan(&status, &conversationID, &meetingURL, &lineContact)
	if err != nil {
		t.Fatalf("select booking: %v", err)
	}
	if status != "pending" {
		t.Errorf("status = %q, want %q", status, "pending")
	}
	if conversationID.Valid || meetingURL.Valid || lineContact.Valid {
		t.Error("optional booking columns should be NULL when not set")
	}

	// The slot uniqueness constraint from the initial schema still holds.
	if _, err := db.Exec(
		"INSERT INTO consultation_bookings (id, expert_id, date, time_slot, name) VALUES (?, ?, ?, ?, ?)",
		"b2", "e1", "2026-09-01", "10:00", "Jiro",
	); err == nil {
		t.Error("duplicate booking slot should violate the unique constraint")
	}
}

func TestIsExpectedError(t *testing.T) {
	tests := []struct {
		name string
		err  string
		stmt string
		want bool
	}{
		{"duplicate column sqlite", "duplicate column name: status", "ALTER TABLE t ADD COLUMN status TEXT", true},
		{"duplicate column mysql", "Error 1060: Duplicate column name 'status'", "ALTER TABLE t ADD COLUMN status TEXT", true},
		{"index exists sqlite", "index ix_t_a already exists", "CREATE INDEX ix_t_a ON t (a)", true},
		{"unique index exists", "index uq_t_a already exists", "CREATE UNIQUE INDEX uq_t_a ON t (a)", true},
		{"index exists mysql", "Error 1061: Duplicate key name 'ix_t_a'", "CREATE INDEX ix_t_a ON t (a)", true},
		{"table exists", "Error 1050: Table 't' already exists", "CREATE TABLE t (id INT)", true},
		{"syntax error", "near \"NOTSQL\": syntax error", "NOTSQL", false},
		{"already exists on insert", "row already exists", "INSERT INTO t VALUES (1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isExpectedError(errors.New(tt.err), tt.stmt); got != tt.want {
				t.Errorf("isExpectedError(%q, %q) = %v, want %v", tt.err, tt.stmt, got, tt.want)
			}
		})
	}
}
