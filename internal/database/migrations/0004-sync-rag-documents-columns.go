package migrations

func init() {
	// Repairs rag_documents tables created by an early deployment that
	// predates 0003's full column list. Fresh databases already have every
	// column, so each ADD COLUMN is expected to fail with a duplicate column
	// error and be skipped.
	//
	// SQLite cannot ADD COLUMN with a non-constant default such as
	// CURRENT_TIMESTAMP, and no SQLite database predates 0003, so this is a
	// recorded no-op there.
	Register(Migration{
		Version:     "0004",
		Description: "Sync rag_documents columns with the model",
		Up: Statements{
			MySQL: []string{
				`ALTER TABLE rag_documents ADD COLUMN user_id VARCHAR(255)`,
				`ALTER TABLE rag_documents ADD COLUMN title VARCHAR(512) NOT NULL`,
				`ALTER TABLE rag_documents ADD COLUMN source_type VARCHAR(50) DEFAULT 'manual'`,
				`ALTER TABLE rag_documents ADD COLUMN source_id VARCHAR(255)`,
				`ALTER TABLE rag_documents ADD COLUMN metadata JSON`,
				`ALTER TABLE rag_documents ADD COLUMN embedding JSON`,
				`ALTER TABLE rag_documents ADD COLUMN created_at DATETIME DEFAULT CURRENT_TIMESTAMP`,
				`ALTER TABLE rag_documents ADD COLUMN updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP`,
				`CREATE INDEX ix_rag_documents_user_id ON rag_documents (user_id)`,
			},
		},
		Down: Statements{},
	})
}
