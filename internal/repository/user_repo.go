package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// SQLUserRepository implements UserRepository on database/sql.
type SQLUserRepository struct {
	db *sql.DB
}

// NewSQLUserRepository creates a new user repository.
func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

// Create creates a new user.
func (r *SQLUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	if user.CreatedAt == nil {
		user.CreatedAt = &now
	}
	user.UpdatedAt = &now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, external_id, nickname, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		user.ID,
		nullableString(user.ExternalID),
		nullableString(user.Nickname),
		formatTime(*user.CreatedAt),
		formatTime(*user.UpdatedAt),
	)
	return err
}

// GetByID retrieves a user by ID. Returns nil when not found.
func (r *SQLUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, external_id, nickname, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id)
	return r.scanUser(row)
}

// GetByExternalID retrieves a user by the identity provider subject.
func (r *SQLUserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, external_id, nickname, created_at, updated_at
		FROM users
		WHERE external_id = ?
	`, externalID)
	return r.scanUser(row)
}

// Count returns the number of users.
func (r *SQLUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *SQLUserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var externalID, nickname, createdAt, updatedAt sql.NullString

	err := row.Scan(&user.ID, &externalID, &nickname, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if externalID.Valid {
		user.ExternalID = &externalID.String
	}
	if nickname.Valid {
		user.Nickname = &nickname.String
	}
	if createdAt.Valid {
		user.CreatedAt = parseTime(createdAt.String)
	}
	if updatedAt.Valid {
		user.UpdatedAt = parseTime(updatedAt.String)
	}

	return &user, nil
}
