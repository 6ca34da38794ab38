// Package repository defines repository interfaces for data access.
// All repositories work against both supported dialects; the SQL stays in
// the portable subset the migrations establish.
package repository

import (
	"context"
	"database/sql"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// CompanyRepository defines methods for company data access.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Company, error)
}

// FinancialStatementRepository defines methods for financial statement data access.
type FinancialStatementRepository interface {
	Create(ctx context.Context, stmt *models.FinancialStatement) error
	// GetByCompanyID returns statements for a company, oldest fiscal year first.
	GetByCompanyID(ctx context.Context, companyID string) ([]*models.FinancialStatement, error)
	GetByDocumentID(ctx context.Context, documentID string) (*models.FinancialStatement, error)
}

// ConversationRepository defines methods for conversation and message data access.
type ConversationRepository interface {
	Create(ctx context.Context, conv *models.Conversation) error
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	// ListMessages returns messages for a conversation in insertion order.
	ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error)
	UpsertMemo(ctx context.Context, memo *models.ConsultationMemo) error
	GetMemo(ctx context.Context, conversationID string) (*models.ConsultationMemo, error)
}

// MemoryRepository defines methods for user memory data access.
type MemoryRepository interface {
	Create(ctx context.Context, memory *models.Memory) error
	GetByUserID(ctx context.Context, userID string) (*models.Memory, error)
}

// BookingRepository defines methods for consultation booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.ConsultationBooking) error
	GetByID(ctx context.Context, id string) (*models.ConsultationBooking, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.ConsultationBooking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}

// Repositories holds all repository instances.
type Repositories struct {
	User               UserRepository
	Company            CompanyRepository
	FinancialStatement FinancialStatementRepository
	Conversation       ConversationRepository
	Memory             MemoryRepository
	Booking            BookingRepository
}

// NewRepositories creates all repository instances.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:               NewSQLUserRepository(db),
		Company:            NewSQLCompanyRepository(db),
		FinancialStatement: NewSQLFinancialStatementRepository(db),
		Conversation:       NewSQLConversationRepository(db),
		Memory:             NewSQLMemoryRepository(db),
		Booking:            NewSQLBookingRepository(db),
	}
}
