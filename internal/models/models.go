// Package models defines the domain models for the consultation service.
// Authentication is external; User.ExternalID references the identity
// provider's subject, and most foreign keys are UUID strings.
package models

import (
	"time"
)

// User represents an end user of the consultation service.
type User struct {
	ID         string     `json:"id"`
	ExternalID *string    `json:"external_id,omitempty"` // Identity provider subject
	Nickname   *string    `json:"nickname,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// ConversationStatus represents the lifecycle state of a consultation.
type ConversationStatus string

const (
	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusEnded    ConversationStatus = "ended"
	ConversationStatusArchived ConversationStatus = "archived"
)

// Conversation represents a consultation session with its running state.
type Conversation struct {
	ID          string     `json:"id"`
	UserID      *string    `json:"user_id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	MainConcern *string    `json:"main_concern,omitempty"`
	Channel     *string    `json:"channel,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Step        *int       `json:"step,omitempty"`
	TurnCount   int        `json:"turn_count"`
}

// Message represents one turn in a conversation.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	Role           string     `json:"role"` // "user" or "assistant"
	Content        string     `json:"content"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// ConsultationMemo is the per-conversation summary memo, one per conversation.
type ConsultationMemo struct {
	ID              string     `json:"id"`
	ConversationID  string     `json:"conversation_id"`
	CurrentPoints   *string    `json:"current_points,omitempty"`
	ImportantPoints *string    `json:"important_points,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// ConversationCheckpoint is a rolling summary snapshot taken every few turns.
type ConversationCheckpoint struct {
	ID             int64      `json:"id"`
	ConversationID string     `json:"conversation_id"`
	Idx            int        `json:"idx"` // Sequence within the conversation
	TurnCount      int        `json:"turn_count"`
	Summary        string     `json:"summary"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// Memory holds long-lived facts remembered about a user across conversations.
type Memory struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	CurrentConcerns *string    `json:"current_concerns,omitempty"`
	ImportantPoints *string    `json:"important_points,omitempty"`
	RememberedFacts *string    `json:"remembered_facts,omitempty"`
	LastUpdatedAt   *time.Time `json:"last_updated_at,omitempty"`
}

// Expert represents a consultant that users can book.
type Expert struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`
	Title              *string  `json:"title,omitempty"`
	Organization       *string  `json:"organization,omitempty"`
	Tags               *string  `json:"tags,omitempty"` // JSON array of tag strings
	Rating             *float64 `json:"rating,omitempty"`
	ReviewCount        *int     `json:"review_count,omitempty"`
	LocationPrefecture *string  `json:"location_prefecture,omitempty"`
	Description        *string  `json:"description,omitempty"`
}

// ExpertAvailability lists bookable slots for an expert on a given date.
type ExpertAvailability struct {
	ID        string `json:"id"`
	ExpertID  string `json:"expert_id"`
	Date      string `json:"date"`       // YYYY-MM-DD
	SlotsJSON string `json:"slots_json"` // JSON array of time slot strings
}

// BookingStatus represents the state of a consultation booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ConsultationBooking represents a booked slot with an expert.
// (expert_id, date, time_slot) is unique.
type ConsultationBooking struct {
	ID             string        `json:"id"`
	ExpertID       string        `json:"expert_id"`
	UserID         *string       `json:"user_id,omitempty"`
	ConversationID *string       `json:"conversation_id,omitempty"`
	Date           string        `json:"date"` // YYYY-MM-DD
	TimeSlot       string        `json:"time_slot"`
	Channel        *string       `json:"channel,omitempty"`
	Name           string        `json:"name"`
	Phone          *string       `json:"phone,omitempty"`
	Email          *string       `json:"email,omitempty"`
	Note           *string       `json:"note,omitempty"`
	Status         BookingStatus `json:"status"`
	MeetingURL     *string       `json:"meeting_url,omitempty"`
	LineContact    *string       `json:"line_contact,omitempty"`
	CreatedAt      *time.Time    `json:"created_at,omitempty"`
}

// Document represents an uploaded file and its extracted text.
type Document struct {
	ID             string     `json:"id"`
	UserID         *string    `json:"user_id,omitempty"`
	CompanyID      *string    `json:"company_id,omitempty"`
	ConversationID *string    `json:"conversation_id,omitempty"`
	Filename       string     `json:"filename"`
	MimeType       *string    `json:"mime_type,omitempty"`
	SizeBytes      int        `json:"size_bytes"`
	UploadedAt     *time.Time `json:"uploaded_at,omitempty"`
	ContentText    *string    `json:"content_text,omitempty"`
	DocType        *string    `json:"doc_type,omitempty"`
	PeriodLabel    *string    `json:"period_label,omitempty"`
	StoragePath    string     `json:"storage_path"`
	Ingested       bool       `json:"ingested"`
}

// Company represents a user's business.
type Company struct {
	ID                 string     `json:"id"`
	UserID             *string    `json:"user_id,omitempty"`
	Name               *string    `json:"name,omitempty"`
	Employees          *int       `json:"employees,omitempty"`
	AnnualRevenueRange *string    `json:"annual_revenue_range,omitempty"`
	CompanyName        *string    `json:"company_name,omitempty"`
	Industry           *string    `json:"industry,omitempty"`
	EmployeesRange     *string    `json:"employees_range,omitempty"`
	AnnualSalesRange   *string    `json:"annual_sales_range,omitempty"`
	LocationPrefecture *string    `json:"location_prefecture,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// CompanyProfile is the onboarding profile, one per user.
type CompanyProfile struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	CompanyName        *string    `json:"company_name,omitempty"`
	Name               *string    `json:"name,omitempty"`
	Industry           *string    `json:"industry,omitempty"`
	Employees          *int       `json:"employees,omitempty"`
	EmployeesRange     *string    `json:"employees_range,omitempty"`
	AnnualSalesRange   *string    `json:"annual_sales_range,omitempty"`
	AnnualRevenueRange *string    `json:"annual_revenue_range,omitempty"`
	LocationPrefecture *string    `json:"location_prefecture,omitempty"`
	YearsInBusiness    *int       `json:"years_in_business,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// FinancialStatement holds one fiscal year of figures for a company.
// Amounts are decimal strings to avoid float rounding on money columns.
type FinancialStatement struct {
	ID                  int64      `json:"id"`
	CompanyID           string     `json:"company_id"`
	FiscalYear          *int       `json:"fiscal_year,omitempty"`
	Sales               *string    `json:"sales,omitempty"`
	OperatingProfit     *string    `json:"operating_profit,omitempty"`
	OrdinaryProfit      *string    `json:"ordinary_profit,omitempty"`
	NetIncome           *string    `json:"net_income,omitempty"`
	Depreciation        *string    `json:"depreciation,omitempty"`
	LaborCost           *string    `json:"labor_cost,omitempty"`
	CurrentAssets       *string    `json:"current_assets,omitempty"`
	CurrentLiabilities  *string    `json:"current_liabilities,omitempty"`
	FixedAssets         *string    `json:"fixed_assets,omitempty"`
	Employees           *int       `json:"employees,omitempty"`
	CashAndDeposits     *string    `json:"cash_and_deposits,omitempty"`
	Receivables         *string    `json:"receivables,omitempty"`
	Inventory           *string    `json:"inventory,omitempty"`
	Payables            *string    `json:"payables,omitempty"`
	Borrowings          *string    `json:"borrowings,omitempty"`
	TotalAssets         *string    `json:"total_assets,omitempty"`
	Equity              *string    `json:"equity,omitempty"`
	TotalLiabilities    *string    `json:"total_liabilities,omitempty"`
	InterestBearingDebt *string    `json:"interest_bearing_debt,omitempty"`
	PreviousSales       *string    `json:"previous_sales,omitempty"`
	DocumentID          *string    `json:"document_id,omitempty"`
	PeriodStart         *string    `json:"period_start,omitempty"` // YYYY-MM-DD
	PeriodEnd           *string    `json:"period_end,omitempty"`   // YYYY-MM-DD
}

// HomeworkStatus represents the state of a homework task.
type HomeworkStatus string

const (
	HomeworkStatusPending   HomeworkStatus = "pending"
	HomeworkStatusDone      HomeworkStatus = "done"
	HomeworkStatusCancelled HomeworkStatus = "cancelled"
)

// HomeworkTask is an action item assigned to a user from a conversation.
// ConversationID is nullable; deleting the conversation orphans the task
// rather than deleting it.
type HomeworkTask struct {
	ID             int64          `json:"id"`
	UserID         string         `json:"user_id"`
	ConversationID *string        `json:"conversation_id,omitempty"`
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	Status         HomeworkStatus `json:"status"`
	DueDate        *string        `json:"due_date,omitempty"` // YYYY-MM-DD
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
}

// RAGDocument is a retrieval corpus entry with its embedding.
type RAGDocument struct {
	ID         int64      `json:"id"`
	UserID     *string    `json:"user_id,omitempty"`
	Title      string     `json:"title"`
	SourceType *string    `json:"source_type,omitempty"`
	SourceID   *string    `json:"source_id,omitempty"`
	Content    string     `json:"content"`
	Metadata   *string    `json:"metadata,omitempty"`  // JSON object
	Embedding  *string    `json:"embedding,omitempty"` // JSON array of floats
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
