package repository

import (
	"context"
	"testing"

	"github.com/yochanchan/yorizo-back/internal/models"
)

func TestFinancialStatementRepository_CreateAndGetByCompany(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	userID := createTestUser(t, repos)

	company := &models.Company{UserID: &userID, CompanyName: strPtr("デモ株式会社")}
	if err := repos.Company.Create(ctx, company); err != nil {
		t.Fatalf("Create company error: %v", err)
	}

	for _, fy := range []int{2024, 2022, 2023} {
		year := fy
		stmt := &models.FinancialStatement{
			CompanyID:   company.ID,
			FiscalYear:  &year,
			Sales:       strPtr("25000000.00"),
			Equity:      strPtr("8000000.00"),
			TotalAssets: strPtr("30000000.00"),
			Employees:   intPtr(8),
		}
		if err := repos.FinancialStatement.Create(ctx, stmt); err != nil {
			t.Fatalf("Create statement (%d) error: %v", fy, err)
		}
		if stmt.ID == 0 {
			t.Errorf("Create statement (%d) should assign an ID", fy)
		}
	}

	stmts, err := repos.FinancialStatement.GetByCompanyID(ctx, company.ID)
	if err != nil {
		t.Fatalf("GetByCompanyID() error: %v", err)
	}
	if len(stmts) != 3 {
		t.Fatalf("GetByCompanyID() returned %d statements, want 3", len(stmts))
	}
	for i, want := range []int{2022, 2023, 2024} {
		if stmts[i].FiscalYear == nil || *stmts[i].FiscalYear != want {
			t.Errorf("statement %d fiscal year = %v, want %d", i, stmts[i].FiscalYear, want)
		}
	}
	if stmts[0].Sales == nil || *stmts[0].Sales != "25000000.00" {
		t.Errorf("Sales = %v, want 25000000.00", stmts[0].Sales)
	}
}

func TestFinancialStatementRepository_DocumentLinkUnique(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	userID := createTestUser(t, repos)

	company := &models.Company{UserID: &userID}
	if err := repos.Company.Create(ctx, company); err != nil {
		t.Fatalf("Create company error: %v", err)
	}

	docID := "doc-1"
	first := &models.FinancialStatement{CompanyID: company.ID, DocumentID: &docID}
	if err := repos.FinancialStatement.Create(ctx, first); err != nil {
		t.Fatalf("Create statement error: %v", err)
	}

	got, err := repos.FinancialStatement.GetByDocumentID(ctx, docID)
	if err != nil {
		t.Fatalf("GetByDocumentID() error: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Errorf("GetByDocumentID() = %v, want statement %d", got, first.ID)
	}

	// One statement per source document.
	dup := &models.FinancialStatement{CompanyID: company.ID, DocumentID: &docID}
	if err := repos.FinancialStatement.Create(ctx, dup); err == nil {
		t.Error("Create() should fail for a duplicate document link")
	}

	missing, err := repos.FinancialStatement.GetByDocumentID(ctx, "other-doc")
	if err != nil {
		t.Fatalf("GetByDocumentID() error: %v", err)
	}
	if missing != nil {
		t.Errorf("GetByDocumentID() = %v for unknown document, want nil", missing)
	}
}
