package migrations

func init() {
	Register(Migration{
		Version:     "0009",
		Description: "Link financial_statements to source documents and add period columns",
		Up: Statements{
			Common: []string{
				`ALTER TABLE financial_statements ADD COLUMN document_id VARCHAR(36)`,
				`ALTER TABLE financial_statements ADD COLUMN period_start DATE`,
				`ALTER TABLE financial_statements ADD COLUMN period_end DATE`,
			},
			MySQL: []string{
				`ALTER TABLE financial_statements
					ADD CONSTRAINT fk_financial_statements_document
					FOREIGN KEY (document_id) REFERENCES documents (id)`,
				`ALTER TABLE financial_statements
					ADD CONSTRAINT uq_financial_statements_document_id UNIQUE (document_id)`,
			},
			SQLite: []string{
				`CREATE UNIQUE INDEX uq_financial_statements_document_id ON financial_statements (document_id)`,
			},
		},
		Down: Statements{
			MySQL: []string{
				`ALTER TABLE financial_statements DROP FOREIGN KEY fk_financial_statements_document`,
				`ALTER TABLE financial_statements DROP INDEX uq_financial_statements_document_id`,
				`ALTER TABLE financial_statements DROP COLUMN period_end`,
				`ALTER TABLE financial_statements DROP COLUMN period_start`,
				`ALTER TABLE financial_statements DROP COLUMN document_id`,
			},
			SQLite: []string{
				`DROP INDEX IF EXISTS uq_financial_statements_document_id`,
				`ALTER TABLE financial_statements DROP COLUMN period_end`,
				`ALTER TABLE financial_statements DROP COLUMN period_start`,
				`ALTER TABLE financial_statements DROP COLUMN document_id`,
			},
		},
	})
}
