// Package seed loads minimal demo data for local development.
// Seeding is idempotent: every section checks for existing rows before
// inserting, so repeated runs leave the database unchanged.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/yochanchan/yorizo-back/internal/models"
	"github.com/yochanchan/yorizo-back/internal/repository"
)

const (
	demoUserID = "demo-user"
	// aliasCompanyID is a legacy fixed id some frontend fixtures still
	// reference; the demo company is mirrored under it.
	aliasCompanyID = "1"
)

// Run seeds demo data. The database must already be migrated; when the
// users table is missing the seed is skipped with a warning rather than
// failing, matching first-boot behavior before migrations have run.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if !hasUsersTable(ctx, db) {
		logger.Warn("users table does not exist; skipping demo seed")
		return nil
	}

	repos := repository.NewRepositories(db)

	user, err := ensureDemoUser(ctx, repos)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}
	company, err := ensureDemoCompany(ctx, repos, user.ID)
	if err != nil {
		return fmt.Errorf("failed to seed demo company: %w", err)
	}
	if err := ensureAliasCompany(ctx, repos, company); err != nil {
		return fmt.Errorf("failed to seed alias company: %w", err)
	}
	if err := ensureFinancials(ctx, repos, company.ID); err != nil {
		return fmt.Errorf("failed to seed financial statements: %w", err)
	}
	if err := ensureAliasFinancials(ctx, repos, company.ID); err != nil {
		return fmt.Errorf("failed to seed alias financial statements: %w", err)
	}
	if err := ensureConversations(ctx, repos, user.ID); err != nil {
		return fmt.Errorf("failed to seed conversations: %w", err)
	}
	if err := ensureMemory(ctx, repos, user.ID); err != nil {
		return fmt.Errorf("failed to seed memory: %w", err)
	}

	logger.Info("demo seed completed", "user", user.ID)
	return nil
}

func hasUsersTable(ctx context.Context, db *sql.DB) bool {
	var one int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM users LIMIT 1").Scan(&one)
	return err == nil || err == sql.ErrNoRows
}

func ensureDemoUser(ctx context.Context, repos *repository.Repositories) (*models.User, error) {
	user, err := repos.User.GetByID(ctx, demoUserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	nickname := demoUserID
	user = &models.User{ID: demoUserID, Nickname: &nickname}
	if err := repos.User.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func ensureDemoCompany(ctx context.Context, repos *repository.Repositories, userID string) (*models.Company, error) {
	// The demo company shares the user's id.
	company, err := repos.Company.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}
	existing, err := repos.Company.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if c.ID != aliasCompanyID {
			return c, nil
		}
	}

	company = &models.Company{
		ID:                 userID,
		UserID:             &userID,
		CompanyName:        strPtr("デモ株式会社"),
		Name:               strPtr("デモ株式会社"),
		Industry:           strPtr("飲食業"),
		Employees:          intPtr(10),
		EmployeesRange:     strPtr("1-10"),
		AnnualSalesRange:   strPtr("30-50M JPY"),
		AnnualRevenueRange: strPtr("1,000〜3,000万円"),
		LocationPrefecture: strPtr("東京都"),
	}
	if err := repos.Company.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func ensureAliasCompany(ctx context.Context, repos *repository.Repositories, base *models.Company) error {
	alias, err := repos.Company.GetByID(ctx, aliasCompanyID)
	if err != nil {
		return err
	}
	if alias != nil {
		return nil
	}

	alias = &models.Company{
		ID:                 aliasCompanyID,
		UserID:             base.UserID,
		Name:               base.Name,
		CompanyName:        base.CompanyName,
		Industry:           base.Industry,
		Employees:          base.Employees,
		EmployeesRange:     base.EmployeesRange,
		AnnualSalesRange:   base.AnnualSalesRange,
		AnnualRevenueRange: base.AnnualRevenueRange,
		LocationPrefecture: base.LocationPrefecture,
	}
	return repos.Company.Create(ctx, alias)
}

// demoFinancials returns three fiscal years of figures for a company.
func demoFinancials(companyID string) []*models.FinancialStatement {
	return []*models.FinancialStatement{
		{
			CompanyID:          companyID,
			FiscalYear:         intPtr(2022),
			Sales:              strPtr("12000000"),
			OperatingProfit:    strPtr("1200000"),
			OrdinaryProfit:     strPtr("1100000"),
			NetIncome:          strPtr("800000"),
			Depreciation:       strPtr("250000"),
			LaborCost:          strPtr("3600000"),
			CurrentAssets:      strPtr("3000000"),
			CurrentLiabilities: strPtr("1800000"),
			FixedAssets:        strPtr("4200000"),
			Equity:             strPtr("3500000"),
			TotalLiabilities:   strPtr("2000000"),
			Employees:          intPtr(8),
		},
		{
			CompanyID:          companyID,
			FiscalYear:         intPtr(2023),
			Sales:              strPtr("13600000"),
			OperatingProfit:    strPtr("1500000"),
			OrdinaryProfit:     strPtr("1400000"),
			NetIncome:          strPtr("950000"),
			Depreciation:       strPtr("280000"),
			LaborCost:          strPtr("3900000"),
			CurrentAssets:      strPtr("3400000"),
			CurrentLiabilities: strPtr("2000000"),
			FixedAssets:        strPtr("4300000"),
			Equity:             strPtr("3800000"),
			TotalLiabilities:   strPtr("2100000"),
			Employees:          intPtr(9),
		},
		{
			CompanyID:          companyID,
			FiscalYear:         intPtr(2024),
			Sales:              strPtr("15000000"),
			OperatingProfit:    strPtr("1650000"),
			OrdinaryProfit:     strPtr("1520000"),
			NetIncome:          strPtr("1050000"),
			Depreciation:       strPtr("300000"),
			LaborCost:          strPtr("4200000"),
			CurrentAssets:      strPtr("3800000"),
			CurrentLiabilities: strPtr("2100000"),
			FixedAssets:        strPtr("4400000"),
			Equity:             strPtr("4200000"),
			TotalLiabilities:   strPtr("2050000"),
			Employees:          intPtr(10),
		},
	}
}

func ensureFinancials(ctx context.Context, repos *repository.Repositories, companyID string) error {
	existing, err := repos.FinancialStatement.GetByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, stmt := range demoFinancials(companyID) {
		if err := repos.FinancialStatement.Create(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ensureAliasFinancials mirrors the base company's statements under the
// alias company id.
func ensureAliasFinancials(ctx context.Context, repos *repository.Repositories, baseCompanyID string) error {
	existing, err := repos.FinancialStatement.GetByCompanyID(ctx, aliasCompanyID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	base, err := repos.FinancialStatement.GetByCompanyID(ctx, baseCompanyID)
	if err != nil {
		return err
	}
	for _, s := range base {
		dup := *s
		dup.ID = 0
		dup.CompanyID = aliasCompanyID
		dup.DocumentID = nil
		if err := repos.FinancialStatement.Create(ctx, &dup); err != nil {
			return err
		}
	}
	return nil
}

func ensureConversations(ctx context.Context, repos *repository.Repositories, userID string) error {
	existing, err := repos.Conversation.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	twoDaysAgo := now.AddDate(0, 0, -2)
	fiveDaysAgo := now.AddDate(0, 0, -5)

	conv1 := &models.Conversation{
		UserID:      &userID,
		Title:       strPtr("Sales growth consultation"),
		MainConcern: strPtr("Regular customers are declining and monthly revenue is flat."),
		Channel:     strPtr("chat"),
		StartedAt:   &twoDaysAgo,
	}
	conv2 := &models.Conversation{
		UserID:      &userID,
		Title:       strPtr("Hiring and staffing"),
		MainConcern: strPtr("Short on hall staff and hiring is not progressing."),
		Channel:     strPtr("chat"),
		StartedAt:   &fiveDaysAgo,
	}
	if err := repos.Conversation.Create(ctx, conv1); err != nil {
		return err
	}
	if err := repos.Conversation.Create(ctx, conv2); err != nil {
		return err
	}

	messages := []*models.Message{
		{ConversationID: conv1.ID, Role: "user", Content: "Sales are sluggish and regulars are decreasing."},
		{ConversationID: conv1.ID, Role: "assistant", Content: "Where do you feel the pain is bigger: number of visitors or average spend?"},
		{ConversationID: conv1.ID, Role: "user", Content: "Visitor count is dropping the most. New customer acquisition is also weak."},
		{ConversationID: conv2.ID, Role: "user", Content: "Hiring for hall staff is not going well."},
		{ConversationID: conv2.ID, Role: "assistant", Content: "What channels have you tried so far?"},
		{ConversationID: conv2.ID, Role: "user", Content: "Job boards and referrals, but little traction."},
	}
	for _, msg := range messages {
		if err := repos.Conversation.CreateMessage(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func ensureMemory(ctx context.Context, repos *repository.Repositories, userID string) error {
	existing, err := repos.Memory.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	memory := &models.Memory{
		UserID:          userID,
		CurrentConcerns: strPtr("資金繰りと売上停滞が気になる"),
		ImportantPoints: strPtr("採用強化と販路拡大が必要"),
		RememberedFacts: strPtr("テイクアウト導入済み"),
	}
	return repos.Memory.Create(ctx, memory)
}
