package migrations

func init() {
	Register(Migration{
		Version:     "0011",
		Description: "Make homework_tasks.conversation_id nullable with ON DELETE SET NULL",
		Up: Statements{
			MySQL: []string{
				`ALTER TABLE homework_tasks DROP FOREIGN KEY fk_homework_tasks_conversation`,
				`ALTER TABLE homework_tasks MODIFY conversation_id VARCHAR(36) NULL`,
				`ALTER TABLE homework_tasks
					ADD CONSTRAINT homework_tasks_conversation_id_fkey
					FOREIGN KEY (conversation_id) REFERENCES conversations (id)
					ON DELETE SET NULL`,
			},
			SQLite: []string{
				// SQLite cannot alter column nullability in place; rebuild the
				// table and carry the rows over.
				`CREATE TABLE homework_tasks_new (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id VARCHAR(36) NOT NULL,
					conversation_id VARCHAR(36),
					title VARCHAR(255) NOT NULL,
					description TEXT,
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					due_date DATE,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					completed_at DATETIME,
					CONSTRAINT fk_homework_tasks_user FOREIGN KEY (user_id) REFERENCES users (id),
					CONSTRAINT homework_tasks_conversation_id_fkey
						FOREIGN KEY (conversation_id) REFERENCES conversations (id)
						ON DELETE SET NULL
				)`,
				`INSERT INTO homework_tasks_new
					(id, user_id, conversation_id, title, description, status,
					 due_date, created_at, updated_at, completed_at)
				SELECT id, user_id, conversation_id, title, description, status,
					 due_date, created_at, updated_at, completed_at
				FROM homework_tasks`,
				`DROP TABLE homework_tasks`,
				`ALTER TABLE homework_tasks_new RENAME TO homework_tasks`,
				`CREATE INDEX ix_homework_tasks_user_id ON homework_tasks (user_id)`,
				`CREATE INDEX ix_homework_tasks_conversation_id ON homework_tasks (conversation_id)`,
			},
		},
		Down: Statements{
			MySQL: []string{
				`ALTER TABLE homework_tasks DROP FOREIGN KEY homework_tasks_conversation_id_fkey`,
				`ALTER TABLE homework_tasks MODIFY conversation_id VARCHAR(36) NOT NULL`,
				`ALTER TABLE homework_tasks
					ADD CONSTRAINT fk_homework_tasks_conversation
					FOREIGN KEY (conversation_id) REFERENCES conversations (id)`,
			},
			SQLite: []string{
				`CREATE TABLE homework_tasks_new (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					user_id VARCHAR(36) NOT NULL,
					conversation_id VARCHAR(36) NOT NULL,
					title VARCHAR(255) NOT NULL,
					description TEXT,
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					due_date DATE,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					completed_at DATETIME,
					CONSTRAINT fk_homework_tasks_user FOREIGN KEY (user_id) REFERENCES users (id),
					CONSTRAINT fk_homework_tasks_conversation
						FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,
				`INSERT INTO homework_tasks_new
					(id, user_id, conversation_id, title, description, status,
					 due_date, created_at, updated_at, completed_at)
				SELECT id, user_id, conversation_id, title, description, status,
					 due_date, created_at, updated_at, completed_at
				FROM homework_tasks
				WHERE conversation_id IS NOT NULL`,
				`DROP TABLE homework_tasks`,
				`ALTER TABLE homework_tasks_new RENAME TO homework_tasks`,
				`CREATE INDEX ix_homework_tasks_user_id ON homework_tasks (user_id)`,
				`CREATE INDEX ix_homework_tasks_conversation_id ON homework_tasks (conversation_id)`,
			},
		},
	})
}
