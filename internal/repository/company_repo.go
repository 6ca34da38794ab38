package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// SQLCompanyRepository implements CompanyRepository on database/sql.
type SQLCompanyRepository struct {
	db *sql.DB
}

// NewSQLCompanyRepository creates a new company repository.
func NewSQLCompanyRepository(db *sql.DB) *SQLCompanyRepository {
	return &SQLCompanyRepository{db: db}
}

// Create creates a new company.
func (r *SQLCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	now := time.Now()
	if company.CreatedAt == nil {
		company.CreatedAt = &now
	}
	company.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO companies (
			id, user_id, name, employees, annual_revenue_range,
			company_name, industry, employees_range, annual_sales_range,
			location_prefecture, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		company.ID,
		nullableString(company.UserID),
		nullableString(company.Name),
		nullableInt(company.Employees),
		nullableString(company.AnnualRevenueRange),
		nullableString(company.CompanyName),
		nullableString(company.Industry),
		nullableString(company.EmployeesRange),
		nullableString(company.AnnualSalesRange),
		nullableString(company.LocationPrefecture),
		formatTime(*company.CreatedAt),
		formatTime(*company.UpdatedAt),
	)
	return err
}

// GetByID retrieves a company by ID. Returns nil when not found.
func (r *SQLCompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, employees, annual_revenue_range,
			   company_name, industry, employees_range, annual_sales_range,
			   location_prefecture, created_at, updated_at
		FROM companies
		WHERE id = ?
	`, id)

	company, err := scanCompany(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return company, err
}

// GetByUserID returns companies belonging to a user.
func (r *SQLCompanyRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Company, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, employees, annual_revenue_range,
			   company_name, industry, employees_range, annual_sales_range,
			   location_prefecture, created_at, updated_at
		FROM companies
		WHERE user_id = ?
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func scanCompany(scan func(...any) error) (*models.Company, error) {
	var company models.Company
	var userID, name, annualRevenueRange, companyName, industry sql.NullString
	var employeesRange, annualSalesRange, locationPrefecture sql.NullString
	var employees sql.NullInt64
	var createdAt, updatedAt sql.NullString

	err := scan(
		&company.ID,
		&userID,
		&name,
		&employees,
		&annualRevenueRange,
		&companyName,
		&industry,
		&employeesRange,
		&annualSalesRange,
		&locationPrefecture,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		company.UserID = &userID.String
	}
	if name.Valid {
		company.Name = &name.String
	}
	if employees.Valid {
		v := int(employees.Int64)
		company.Employees = &v
	}
	if annualRevenueRange.Valid {
		company.AnnualRevenueRange = &annualRevenueRange.String
	}
	if companyName.Valid {
		company.CompanyName = &companyName.String
	}
	if industry.Valid {
		company.Industry = &industry.String
	}
	if employeesRange.Valid {
		company.EmployeesRange = &employeesRange.String
	}
	if annualSalesRange.Valid {
		company.AnnualSalesRange = &annualSalesRange.String
	}
	if locationPrefecture.Valid {
		company.LocationPrefecture = &locationPrefecture.String
	}
	if createdAt.Valid {
		company.CreatedAt = parseTime(createdAt.String)
	}
	if updatedAt.Valid {
		company.UpdatedAt = parseTime(updatedAt.String)
	}

	return &company, nil
}
