package migrations

func init() {
	Register(Migration{
		Version:     "0008",
		Description: "Add balance sheet fields to financial_statements",
		Up: Statements{
			Common: []string{
				`ALTER TABLE financial_statements ADD COLUMN total_assets DECIMAL(18,2)`,
				`ALTER TABLE financial_statements ADD COLUMN equity DECIMAL(18,2)`,
				`ALTER TABLE financial_statements ADD COLUMN total_liabilities DECIMAL(18,2)`,
				`ALTER TABLE financial_statements ADD COLUMN interest_bearing_debt DECIMAL(18,2)`,
				`ALTER TABLE financial_statements ADD COLUMN previous_sales DECIMAL(18,2)`,
			},
		},
		Down: Statements{
			Common: []string{
				`ALTER TABLE financial_statements DROP COLUMN previous_sales`,
				`ALTER TABLE financial_statements DROP COLUMN interest_bearing_debt`,
				`ALTER TABLE financial_statements DROP COLUMN total_liabilities`,
				`ALTER TABLE financial_statements DROP COLUMN equity`,
				`ALTER TABLE financial_statements DROP COLUMN total_assets`,
			},
		},
	})
}
