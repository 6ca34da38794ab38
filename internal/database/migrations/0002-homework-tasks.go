package migrations

func init() {
	Register(Migration{
		Version:     "0002",
		Description: "Add homework_tasks table",
		Up: Statements{
			MySQL: []string{
				`CREATE TABLE IF NOT EXISTS homework_tasks (
					id INT NOT NULL AUTO_INCREMENT,
					user_id VARCHAR(36) NOT NULL,
					conversation_id VARCHAR(36) NOT NULL,
					title VARCHAR(255) NOT NULL,
					description TEXT,
					status VARCHAR(20) NOT NULL DEFAULT 'pending',
					due_date DATE,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
					completed_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT fk_homework_tasks_user FOREIGN KEY (user_id) REFERENCES users (id),
					CONSTRAINT fk_homework_tasks_conversation FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,
				`CREATE INDEX ix_homework_tasks_user_id ON homework_tasks (user_id)`,
				`CREATE INDEX ix_homework_tasks_conversation_id ON homework_tasks (conversation_id)`,
			},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS homework_tasks (
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
					CONSTRAINT fk_homework_tasks_conversation FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,
				`CREATE INDEX ix_homework_tasks_user_id ON homework_tasks (user_id)`,
				`CREATE INDEX ix_homework_tasks_conversation_id ON homework_tasks (conversation_id)`,
			},
		},
		Down: Statements{
			Common: []string{
				`DROP TABLE IF EXISTS homework_tasks`,
			},
		},
	})
}
