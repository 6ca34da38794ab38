package repository

import (
	"context"
	"database/sql"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// SQLFinancialStatementRepository implements FinancialStatementRepository on database/sql.
type SQLFinancialStatementRepository struct {
	db *sql.DB
}

// NewSQLFinancialStatementRepository creates a new financial statement repository.
func NewSQLFinancialStatementRepository(db *sql.DB) *SQLFinancialStatementRepository {
	return &SQLFinancialStatementRepository{db: db}
}

const financialStatementColumns = `
	id, company_id, fiscal_year, sales, operating_profit, ordinary_profit,
	net_income, depreciation, labor_cost, current_assets, current_liabilities,
	fixed_assets, employees, cash_and_deposits, receivables, inventory,
	payables, borrowings, total_assets, equity, total_liabilities,
	interest_bearing_debt, previous_sales, document_id, period_start, period_end`

// Create inserts a statement and fills in the generated ID.
func (r *SQLFinancialStatementRepository) Create(ctx context.Context, stmt *models.FinancialStatement) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO financial_statements (
			company_id, fiscal_year, sales, operating_profit, ordinary_profit,
			net_income, depreciation, labor_cost, current_assets, current_liabilities,
			fixed_assets, employees, cash_and_deposits, receivables, inventory,
			payables, borrowings, total_assets, equity, total_liabilities,
			interest_bearing_debt, previous_sales, document_id, period_start, period_end
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		stmt.CompanyID,
		nullableInt(stmt.FiscalYear),
		nullableString(stmt.Sales),
		nullableString(stmt.OperatingProfit),
		nullableString(stmt.OrdinaryProfit),
		nullableString(stmt.NetIncome),
		nullableString(stmt.Depreciation),
		nullableString(stmt.LaborCost),
		nullableString(stmt.CurrentAssets),
		nullableString(stmt.CurrentLiabilities),
		nullableString(stmt.FixedAssets),
		nullableInt(stmt.Employees),
		nullableString(stmt.CashAndDeposits),
		nullableString(stmt.Receivables),
		nullableString(stmt.Inventory),
		nullableString(stmt.Payables),
		nullableString(stmt.Borrowings),
		nullableString(stmt.TotalAssets),
		nullableString(stmt.Equity),
		nullableString(stmt.TotalLiabilities),
		nullableString(stmt.InterestBearingDebt),
		nullableString(stmt.PreviousSales),
		nullableString(stmt.DocumentID),
		nullableString(stmt.PeriodStart),
		nullableString(stmt.PeriodEnd),
	)
	if err != nil {
		return err
	}

	if id, err := res.LastInsertId(); err == nil {
		stmt.ID = id
	}
	return nil
}

// GetByCompanyID returns statements for a company, oldest fiscal year first.
func (r *SQLFinancialStatementRepository) GetByCompanyID(ctx context.Context, companyID string) ([]*models.FinancialStatement, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+financialStatementColumns+`
		FROM financial_statements
		WHERE company_id = ?
		ORDER BY fiscal_year
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stmts []*models.FinancialStatement
	for rows.Next() {
		stmt, err := scanFinancialStatement(rows.Scan)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, rows.Err()
}

// GetByDocumentID returns the statement extracted from a document, or nil.
func (r *SQLFinancialStatementRepository) GetByDocumentID(ctx context.Context, documentID string) (*models.FinancialStatement, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+financialStatementColumns+`
		FROM financial_statements
		WHERE document_id = ?
	`, documentID)

	stmt, err := scanFinancialStatement(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return stmt, err
}

func scanFinancialStatement(scan func(...any) error) (*models.FinancialStatement, error) {
	var stmt models.FinancialStatement
	var fiscalYear, employees sql.NullInt64
	decimals := make([]sql.NullString, 20)
	var documentID, periodStart, periodEnd sql.NullString

	err := scan(
		&stmt.ID,
		&stmt.CompanyID,
		&fiscalYear,
		&decimals[0],  // sales
		&decimals[1],  // operating_profit
		&decimals[2],  // ordinary_profit
		&decimals[3],  // net_income
		&decimals[4],  // depreciation
		&decimals[5],  // labor_cost
		&decimals[6],  // current_assets
		&decimals[7],  // current_liabilities
		&decimals[8],  // fixed_assets
		&employees,
		&decimals[9],  // cash_and_deposits
		&decimals[10], // receivables
		&decimals[11], // inventory
		&decimals[12], // payables
		&decimals[13], // borrowings
		&decimals[14], // total_assets
		&decimals[15], // equity
		&decimals[16], // total_liabilities
		&decimals[17], // interest_bearing_debt
		&decimals[18], // previous_sales
		&documentID,
		&periodStart,
		&periodEnd,
	)
	if err != nil {
		return nil, err
	}

	if fiscalYear.Valid {
		v := int(fiscalYear.Int64)
		stmt.FiscalYear = &v
	}
	if employees.Valid {
		v := int(employees.Int64)
		stmt.Employees = &v
	}

	fields := []**string{
		&stmt.Sales, &stmt.OperatingProfit, &stmt.OrdinaryProfit, &stmt.NetIncome,
		&stmt.Depreciation, &stmt.LaborCost, &stmt.CurrentAssets, &stmt.CurrentLiabilities,
		&stmt.FixedAssets, &stmt.CashAndDeposits, &stmt.Receivables, &stmt.Inventory,
		&stmt.Payables, &stmt.Borrowings, &stmt.TotalAssets, &stmt.Equity,
		&stmt.TotalLiabilities, &stmt.InterestBearingDebt, &stmt.PreviousSales,
	}
	for i, field := range fields {
		if decimals[i].Valid {
			s := decimals[i].String
			*field = &s
		}
	}

	if documentID.Valid {
		stmt.DocumentID = &documentID.String
	}
	if periodStart.Valid {
		stmt.PeriodStart = &periodStart.String
	}
	if periodEnd.Valid {
		stmt.PeriodEnd = &periodEnd.String
	}

	return &stmt, nil
}
