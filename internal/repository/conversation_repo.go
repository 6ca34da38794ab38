package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// SQLConversationRepository implements ConversationRepository on database/sql.
type SQLConversationRepository struct {
	db *sql.DB
}

// NewSQLConversationRepository creates a new conversation repository.
func NewSQLConversationRepository(db *sql.DB) *SQLConversationRepository {
	return &SQLConversationRepository{db: db}
}

// Create creates a new conversation.
func (r *SQLConversationRepository) Create(ctx context.Context, conv *models.Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.StartedAt == nil {
		now := time.Now()
		conv.StartedAt = &now
	}

	var endedAt any
	if conv.EndedAt != nil {
		endedAt = formatTime(*conv.EndedAt)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (
			id, user_id, title, started_at, ended_at, main_concern,
			channel, category, status, step, turn_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		conv.ID,
		nullableString(conv.UserID),
		nullableString(conv.Title),
		formatTime(*conv.StartedAt),
		endedAt,
		nullableString(conv.MainConcern),
		nullableString(conv.Channel),
		nullableString(conv.Category),
		nullableString(conv.Status),
		nullableInt(conv.Step),
		conv.TurnCount,
	)
	return err
}

// GetByID retrieves a conversation by ID. Returns nil when not found.
func (r *SQLConversationRepository) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, started_at, ended_at, main_concern,
			   channel, category, status, step, turn_count
		FROM conversations
		WHERE id = ?
	`, id)

	conv, err := scanConversation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return conv, err
}

// ListByUserID returns a user's conversations, newest first.
func (r *SQLConversationRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Conversation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, started_at, ended_at, main_concern,
			   channel, category, status, step, turn_count
		FROM conversations
		WHERE user_id = ?
		ORDER BY started_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []*models.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows.Scan)
		if err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}
	return convs, rows.Err()
}

// CreateMessage appends a message to a conversation.
func (r *SQLConversationRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt == nil {
		now := time.Now()
		msg.CreatedAt = &now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, conversation_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		msg.ID,
		msg.ConversationID,
		msg.Role,
		msg.Content,
		formatTime(*msg.CreatedAt),
	)
	return err
}

// ListMessages returns messages for a conversation in insertion order.
func (r *SQLConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, conversation_id, role, content, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at, id
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*models.Message
	for rows.Next() {
		var msg models.Message
		var createdAt sql.NullString
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			msg.CreatedAt = parseTime(createdAt.String)
		}
		msgs = append(msgs, &msg)
	}
	return msgs, rows.Err()
}

// UpsertMemo creates or replaces the conversation's memo. One memo per
// conversation, enforced by the unique constraint.
func (r *SQLConversationRepository) UpsertMemo(ctx context.Context, memo *models.ConsultationMemo) error {
	now := time.Now()

	existing, err := r.GetMemo(ctx, memo.ConversationID)
	if err != nil {
		return err
	}
	if existing != nil {
		memo.ID = existing.ID
		memo.CreatedAt = existing.CreatedAt
		memo.UpdatedAt = &now
		_, err := r.db.ExecContext(ctx, `
			UPDATE consultation_memos
			SET current_points = ?, important_points = ?, updated_at = ?
			WHERE conversation_id = ?
		`,
			nullableString(memo.CurrentPoints),
			nullableString(memo.ImportantPoints),
			formatTime(now),
			memo.ConversationID,
		)
		return err
	}

	if memo.ID == "" {
		memo.ID = uuid.NewString()
	}
	memo.CreatedAt = &now
	memo.UpdatedAt = &now
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO consultation_memos (id, conversation_id, current_points, important_points, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		memo.ID,
		memo.ConversationID,
		nullableString(memo.CurrentPoints),
		nullableString(memo.ImportantPoints),
		formatTime(now),
		formatTime(now),
	)
	return err
}

// GetMemo retrieves the memo for a conversation. Returns nil when not found.
func (r *SQLConversationRepository) GetMemo(ctx context.Context, conversationID string) (*models.ConsultationMemo, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, conversation_id, current_points, important_points, created_at, updated_at
		FROM consultation_memos
		WHERE conversation_id = ?
	`, conversationID)

	var memo models.ConsultationMemo
	var currentPoints, importantPoints, createdAt, updatedAt sql.NullString

	err := row.Scan(&memo.ID, &memo.ConversationID, &currentPoints, &importantPoints, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if currentPoints.Valid {
		memo.CurrentPoints = &currentPoints.String
	}
	if importantPoints.Valid {
		memo.ImportantPoints = &importantPoints.String
	}
	if createdAt.Valid {
		memo.CreatedAt = parseTime(createdAt.String)
	}
	if updatedAt.Valid {
		memo.UpdatedAt = parseTime(updatedAt.String)
	}

	return &memo, nil
}

func scanConversation(scan func(...any) error) (*models.Conversation, error) {
	var conv models.Conversation
	var userID, title, mainConcern, channel, category, status sql.NullString
	var startedAt, endedAt sql.NullString
	var step sql.NullInt64

	err := scan(
		&conv.ID,
		&userID,
		&title,
		&startedAt,
		&endedAt,
		&mainConcern,
		&channel,
		&category,
		&status,
		&step,
		&conv.TurnCount,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		conv.UserID = &userID.String
	}
	if title.Valid {
		conv.Title = &title.String
	}
	if startedAt.Valid {
		conv.StartedAt = parseTime(startedAt.String)
	}
	if endedAt.Valid {
		conv.EndedAt = parseTime(endedAt.String)
	}
	if mainConcern.Valid {
		conv.MainConcern = &mainConcern.String
	}
	if channel.Valid {
		conv.Channel = &channel.String
	}
	if category.Valid {
		conv.Category = &category.String
	}
	if status.Valid {
		conv.Status = &status.String
	}
	if step.Valid {
		v := int(step.Int64)
		conv.Step = &v
	}

	return &conv, nil
}
