package migrations

func init() {
	Register(Migration{
		Version:     "0001",
		Description: "Initial schema: users, conversations, experts, bookings, documents, companies",
		Up: Statements{
			Common: []string{
				`CREATE TABLE IF NOT EXISTS users (
					id VARCHAR(36) NOT NULL,
					external_id VARCHAR(255),
					nickname VARCHAR(255),
					created_at DATETIME,
					updated_at DATETIME,
					PRIMARY KEY (id)
				)`,

				`CREATE TABLE IF NOT EXISTS conversations (
					id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36),
					title VARCHAR(255),
					started_at DATETIME,
					ended_at DATETIME,
					main_concern TEXT,
					channel VARCHAR(50),
					category VARCHAR(32),
					status VARCHAR(32),
					step INT,
					PRIMARY KEY (id),
					CONSTRAINT fk_conversations_user FOREIGN KEY (user_id) REFERENCES users (id)
				)`,

				`CREATE TABLE IF NOT EXISTS messages (
					id VARCHAR(36) NOT NULL,
					conversation_id VARCHAR(36) NOT NULL,
					role VARCHAR(16) NOT NULL,
					content TEXT NOT NULL,
					created_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT fk_messages_conversation FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,

				`CREATE TABLE IF NOT EXISTS consultation_memos (
					id VARCHAR(36) NOT NULL,
					conversation_id VARCHAR(36) NOT NULL,
					current_points TEXT,
					important_points TEXT,
					created_at DATETIME,
					updated_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT uq_consultation_memos_conversation UNIQUE (conversation_id),
					CONSTRAINT fk_consultation_memos_conversation FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,

				`CREATE TABLE IF NOT EXISTS memories (
					id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36) NOT NULL,
					current_concerns TEXT,
					important_points TEXT,
					remembered_facts TEXT,
					last_updated_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT fk_memories_user FOREIGN KEY (user_id) REFERENCES users (id)
				)`,

				`CREATE TABLE IF NOT EXISTS experts (
					id VARCHAR(36) NOT NULL,
					name VARCHAR(255) NOT NULL,
					avatar_url VARCHAR(255),
					title VARCHAR(255),
					organization VARCHAR(255),
					tags TEXT,
					rating FLOAT,
					review_count INT,
					location_prefecture VARCHAR(100),
					description TEXT,
					PRIMARY KEY (id)
				)`,

				`CREATE TABLE IF NOT EXISTS expert_availabilities (
					id VARCHAR(36) NOT NULL,
					expert_id VARCHAR(36) NOT NULL,
					date DATE NOT NULL,
					slots_json TEXT NOT NULL,
					PRIMARY KEY (id),
					CONSTRAINT fk_expert_availabilities_expert FOREIGN KEY (expert_id) REFERENCES experts (id)
				)`,

				`CREATE TABLE IF NOT EXISTS consultation_bookings (
					id VARCHAR(36) NOT NULL,
					expert_id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36),
					date DATE NOT NULL,
					time_slot VARCHAR(50) NOT NULL,
					channel VARCHAR(20),
					name VARCHAR(255) NOT NULL,
					phone VARCHAR(50),
					email VARCHAR(255),
					note TEXT,
					created_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT uq_consultation_booking_slot UNIQUE (expert_id, date, time_slot),
					CONSTRAINT fk_consultation_bookings_expert FOREIGN KEY (expert_id) REFERENCES experts (id),
					CONSTRAINT fk_consultation_bookings_user FOREIGN KEY (user_id) REFERENCES users (id)
				)`,

				`CREATE TABLE IF NOT EXISTS documents (
					id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36),
					company_id VARCHAR(36),
					conversation_id VARCHAR(36),
					filename VARCHAR(255) NOT NULL,
					mime_type VARCHAR(100),
					size_bytes INT NOT NULL,
					uploaded_at DATETIME,
					content_text TEXT,
					doc_type VARCHAR(50),
					period_label VARCHAR(50),
					storage_path VARCHAR(500) NOT NULL,
					ingested TINYINT(1),
					PRIMARY KEY (id),
					CONSTRAINT fk_documents_user FOREIGN KEY (user_id) REFERENCES users (id),
					CONSTRAINT fk_documents_conversation FOREIGN KEY (conversation_id) REFERENCES conversations (id)
				)`,

				`CREATE TABLE IF NOT EXISTS companies (
					id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36),
					name VARCHAR(255),
					employees INT,
					annual_revenue_range VARCHAR(100),
					company_name VARCHAR(255),
					industry VARCHAR(255),
					employees_range VARCHAR(50),
					annual_sales_range VARCHAR(50),
					location_prefecture VARCHAR(100),
					created_at DATETIME,
					updated_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT fk_companies_user FOREIGN KEY (user_id) REFERENCES users (id)
				)`,

				`CREATE TABLE IF NOT EXISTS company_profiles (
					id VARCHAR(36) NOT NULL,
					user_id VARCHAR(36) NOT NULL,
					company_name VARCHAR(255),
					name VARCHAR(255),
					industry VARCHAR(255),
					employees INT,
					employees_range VARCHAR(50),
					annual_sales_range VARCHAR(50),
					annual_revenue_range VARCHAR(100),
					location_prefecture VARCHAR(100),
					years_in_business INT,
					created_at DATETIME,
					updated_at DATETIME,
					PRIMARY KEY (id),
					CONSTRAINT uq_company_profiles_user UNIQUE (user_id),
					CONSTRAINT fk_company_profiles_user FOREIGN KEY (user_id) REFERENCES users (id)
				)`,

				`CREATE INDEX ix_companies_user_id ON companies (user_id)`,
			},
			MySQL: []string{
				`CREATE TABLE IF NOT EXISTS financial_statements (
					id INT NOT NULL AUTO_INCREMENT,
					company_id VARCHAR(36) NOT NULL,
					fiscal_year INT,
					sales DECIMAL(18,2),
					operating_profit DECIMAL(18,2),
					ordinary_profit DECIMAL(18,2),
					net_income DECIMAL(18,2),
					depreciation DECIMAL(18,2),
					labor_cost DECIMAL(18,2),
					current_assets DECIMAL(18,2),
					current_liabilities DECIMAL(18,2),
					fixed_assets DECIMAL(18,2),
					employees INT,
					cash_and_deposits DECIMAL(18,2),
					receivables DECIMAL(18,2),
					inventory DECIMAL(18,2),
					payables DECIMAL(18,2),
					borrowings DECIMAL(18,2),
					PRIMARY KEY (id),
					CONSTRAINT fk_financial_statements_company FOREIGN KEY (company_id) REFERENCES companies (id)
				)`,
				`CREATE INDEX ix_financial_statements_company_id ON financial_statements (company_id)`,
			},
			SQLite: []string{
				`CREATE TABLE IF NOT EXISTS financial_statements (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					company_id VARCHAR(36) NOT NULL,
					fiscal_year INT,
					sales DECIMAL(18,2),
					operating_profit DECIMAL(18,2),
					ordinary_profit DECIMAL(18,2),
					net_income DECIMAL(18,2),
					depreciation DECIMAL(18,2),
					labor_cost DECIMAL(18,2),
					current_assets DECIMAL(18,2),
					current_liabilities DECIMAL(18,2),
					fixed_assets DECIMAL(18,2),
					employees INT,
					cash_and_deposits DECIMAL(18,2),
					receivables DECIMAL(18,2),
					inventory DECIMAL(18,2),
					payables DECIMAL(18,2),
					borrowings DECIMAL(18,2),
					CONSTRAINT fk_financial_statements_company FOREIGN KEY (company_id) REFERENCES companies (id)
				)`,
				`CREATE INDEX ix_financial_statements_company_id ON financial_statements (company_id)`,
			},
		},
		Down: Statements{
			Common: []string{
				`DROP TABLE IF EXISTS financial_statements`,
				`DROP TABLE IF EXISTS company_profiles`,
				`DROP TABLE IF EXISTS companies`,
				`DROP TABLE IF EXISTS documents`,
				`DROP TABLE IF EXISTS consultation_bookings`,
				`DROP TABLE IF EXISTS expert_availabilities`,
				`DROP TABLE IF EXISTS experts`,
				`DROP TABLE IF EXISTS memories`,
				`DROP TABLE IF EXISTS consultation_memos`,
				`DROP TABLE IF EXISTS messages`,
				`DROP TABLE IF EXISTS conversations`,
				`DROP TABLE IF EXISTS users`,
			},
		},
	})
}
