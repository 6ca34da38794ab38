package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/yochanchan/yorizo-back/internal/models"
)

// SQLBookingRepository implements BookingRepository on database/sql.
type SQLBookingRepository struct {
	db *sql.DB
}

// NewSQLBookingRepository creates a new booking repository.
func NewSQLBookingRepository(db *sql.DB) *SQLBookingRepository {
	return &SQLBookingRepository{db: db}
}

// Create creates a booking. The (expert_id, date, time_slot) unique
// constraint makes double-booking a slot fail here.
func (r *SQLBookingRepository) Create(ctx context.Context, booking *models.ConsultationBooking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if booking.CreatedAt == nil {
		now := time.Now()
		booking.CreatedAt = &now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO consultation_bookings (
			id, expert_id, user_id, conversation_id, date, time_slot, channel,
			name, phone, email, note, status, meeting_url, line_contact, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		booking.ID,
		booking.ExpertID,
		nullableString(booking.UserID),
		nullableString(booking.ConversationID),
		booking.Date,
		booking.TimeSlot,
		nullableString(booking.Channel),
		booking.Name,
		nullableString(booking.Phone),
		nullableString(booking.Email),
		nullableString(booking.Note),
		string(booking.Status),
		nullableString(booking.MeetingURL),
		nullableString(booking.LineContact),
		formatTime(*booking.CreatedAt),
	)
	return err
}

// GetByID retrieves a booking by ID. Returns nil when not found.
func (r *SQLBookingRepository) GetByID(ctx context.Context, id string) (*models.ConsultationBooking, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, expert_id, user_id, conversation_id, date, time_slot, channel,
			   name, phone, email, note, status, meeting_url, line_contact, created_at
		FROM consultation_bookings
		WHERE id = ?
	`, id)

	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return booking, err
}

// ListByUserID returns a user's bookings, soonest first.
func (r *SQLBookingRepository) ListByUserID(ctx context.Context, userID string) ([]*models.ConsultationBooking, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, expert_id, user_id, conversation_id, date, time_slot, channel,
			   name, phone, email, note, status, meeting_url, line_contact, created_at
		FROM consultation_bookings
		WHERE user_id = ?
		ORDER BY date, time_slot
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.ConsultationBooking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// UpdateStatus moves a booking to a new status.
func (r *SQLBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE consultation_bookings SET status = ? WHERE id = ?
	`, string(status), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanBooking(scan func(...any) error) (*models.ConsultationBooking, error) {
	var booking models.ConsultationBooking
	var userID, conversationID, channel, phone, email, note sql.NullString
	var meetingURL, lineContact, createdAt sql.NullString
	var status string

	err := scan(
		&booking.ID,
		&booking.ExpertID,
		&userID,
		&conversationID,
		&booking.Date,
		&booking.TimeSlot,
		&channel,
		&booking.Name,
		&phone,
		&email,
		&note,
		&status,
		&meetingURL,
		&lineContact,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatus(status)
	if userID.Valid {
		booking.UserID = &userID.String
	}
	if conversationID.Valid {
		booking.ConversationID = &conversationID.String
	}
	if channel.Valid {
		booking.Channel = &channel.String
	}
	if phone.Valid {
		booking.Phone = &phone.String
	}
	if email.Valid {
		booking.Email = &email.String
	}
	if note.Valid {
		booking.Note = &note.String
	}
	if meetingURL.Valid {
		booking.MeetingURL = &meetingURL.String
	}
	if lineContact.Valid {
		booking.LineContact = &lineContact.String
	}
	if createdAt.Valid {
		booking.CreatedAt = parseTime(createdAt.String)
	}

	return &booking, nil
}
