package migrations

func init() {
	Register(Migration{
		Version:     "0003",
		Description: "Add rag_documents table for retrieval corpus",
		Up: Statements{
			MySQL: []string{
				`CREATE TABLE IF NOT EXISTS rag_documents (
					id BIGINT NOT NULL AUTO_INCREMENT,
					user_id VARCHAR(255),
					title VARCHAR(512) NOT NULL,
					source_type VARCHAR(50) DEFAULT 'system',
					source_id VARCHAR(255),
					content TEXT NOT NULL,
					metadata JSON,
					embedding JSON,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
					PRIMARY KEY (id)
				)`,
				`CREATE INDEX ix_rag_documents_user_id ON rag_documents (user_id)`,
			},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS rag_documents (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id VARCHAR(255),
					title VARCHAR(512) NOT NULL,
					source_type VARCHAR(50) DEFAULT 'system',
					source_id VARCHAR(255),
					content TEXT NOT NULL,
					metadata JSON,
					embedding JSON,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX ix_rag_documents_user_id ON rag_documents (user_id)`,
			},
		},
		Down: Statements{
			Common: []string{
				`DROP TABLE IF EXISTS rag_documents`,
			},
		},
	})
}
