package migrations

func init() {
	Register(Migration{
		Version:     "0010",
		Description: "Add conversation turn counter and conversation_checkpoints table",
		Up: Statements{
			MySQL: []string{
				`ALTER TABLE conversations ADD COLUMN turn_count INT NOT NULL DEFAULT 0`,
				`ALTER TABLE conversations ALTER COLUMN turn_count DROP DEFAULT`,
				`CREATE TABLE IF NOT EXISTS conversation_checkpoints (
					id INT NOT NULL AUTO_INCREMENT,
					conversation_id VARCHAR(36) NOT NULL,
					idx INT NOT NULL,
					turn_count INT NOT NULL,
					summary TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (id),
					CONSTRAINT uq_conversation_checkpoint_idx UNIQUE (conversation_id, idx),
					CONSTRAINT uq_conversation_checkpoint_turn_count UNIQUE (conversation_id, turn_count),
					CONSTRAINT fk_conversation_checkpoints_conversation
						FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,
				`CREATE INDEX ix_conversation_checkpoints_conversation_id ON conversation_checkpoints (conversation_id)`,
			},
			SQLite: []string{
				`ALTER TABLE conversations ADD COLUMN turn_count INT NOT NULL DEFAULT 0`,
				`CREATE TABLE IF NOT EXISTS conversation_checkpoints (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					conversation_id VARCHAR(36) NOT NULL,
					idx INT NOT NULL,
					turn_count INT NOT NULL,
					summary TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT uq_conversation_checkpoint_idx UNIQUE (conversation_id, idx),
					CONSTRAINT uq_conversation_checkpoint_turn_count UNIQUE (conversation_id, turn_count),
					CONSTRAINT fk_conversation_checkpoints_conversation
						FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,
				`CREATE INDEX ix_conversation_checkpoints_conversation_id ON conversation_checkpoints (conversation_id)`,
			},
		},
		Down: Statements{
			Common: []string{
				`DROP TABLE IF EXISTS conversation_checkpoints`,
				`ALTER TABLE conversations DROP COLUMN turn_count`,
			},
		},
	})
}
