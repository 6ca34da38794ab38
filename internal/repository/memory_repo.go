package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// SQLMemoryRepository implements MemoryRepository on database/sql.
type SQLMemoryRepository struct {
	db *sql.DB
}

// NewSQLMemoryRepository creates a new memory repository.
func NewSQLMemoryRepository(db *sql.DB) *SQLMemoryRepository {
	return &SQLMemoryRepository{db: db}
}

// Create creates a new memory record for a user.
func (r *SQLMemoryRepository) Create(ctx context.Context, memory *models.Memory) error {
	if memory.ID == "" {
		memory.ID = uuid.NewString()
	}
	if memory.LastUpdatedAt == nil {
		now := time.Now()
		memory.LastUpdatedAt = &now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memories (id, user_id, current_concerns, important_points, remembered_facts, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		memory.ID,
		memory.UserID,
		nullableString(memory.CurrentConcerns),
		nullableString(memory.ImportantPoints),
		nullableString(memory.RememberedFacts),
		formatTime(*memory.LastUpdatedAt),
	)
	return err
}

// GetByUserID retrieves the newest memory for a user. Returns nil when none.
func (r *SQLMemoryRepository) GetByUserID(ctx context.Context, userID string) (*models.Memory, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, current_concerns, important_points, remembered_facts, last_updated_at
		FROM memories
		WHERE user_id = ?
		ORDER BY last_updated_at DESC
		LIMIT 1
	`, userID)

	var memory models.Memory
	var currentConcerns, importantPoints, rememberedFacts, lastUpdatedAt sql.NullString

	err := row.Scan(&memory.ID, &memory.UserID, &currentConcerns, &importantPoints, &rememberedFacts, &lastUpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if currentConcerns.Valid {
		memory.CurrentConcerns = &currentConcerns.String
	}
	if importantPoints.Valid {
		memory.ImportantPoints = &importantPoints.String
	}
	if rememberedFacts.Valid {
		memory.RememberedFacts = &rememberedFacts.String
	}
	if lastUpdatedAt.Valid {
		memory.LastUpdatedAt = parseTime(lastUpdatedAt.String)
	}

	return &memory, nil
}
