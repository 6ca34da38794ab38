package repository

import (
	"context"
	"testing"

	"github.com/yochanchan/yorizo-back/internal/models"
)

func TestBookingRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	userID := createTestUser(t, repos)
	expertID := createTestExpert(t, db)

	booking := &models.ConsultationBooking{
		ExpertID: expertID,
		UserID:   &userID,
		Date:     "2026-09-01",
		TimeSlot: "10:00",
		Name:     "山田太郎",
		Channel:  strPtr("online"),
	}
	if err := repos.Booking.Create(ctx, booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("Status = %q after create, want pending", booking.Status)
	}

	got, err := repos.Booking.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID() returned nil")
	}
	if got.Status != models.BookingStatusPending {
		t.Errorf("Status = %q, want pending", got.Status)
	}
	if got.MeetingURL != nil || got.LineContact != nil || got.ConversationID != nil {
		t.Error("optional columns should be nil when not set")
	}
}

func TestBookingRepository_SlotUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	expertID := createTestExpert(t, db)

	first := &models.ConsultationBooking{
		ExpertID: expertID, Date: "2026-09-01", TimeSlot: "10:00", Name: "A",
	}
	if err := repos.Booking.Create(ctx, first); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	dup := &models.ConsultationBooking{
		ExpertID: expertID, Date: "2026-09-01", TimeSlot: "10:00", Name: "B",
	}
	if err := repos.Booking.Create(ctx, dup); err == nil {
		t.Error("Create() should fail for a taken slot")
	}

	// A different slot on the same day is fine.
	other := &models.ConsultationBooking{
		ExpertID: expertID, Date: "2026-09-01", TimeSlot: "11:00", Name: "B",
	}
	if err := repos.Booking.Create(ctx, other); err != nil {
		t.Errorf("Create() error for free slot: %v", err)
	}
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	expertID := createTestExpert(t, db)

	booking := &models.ConsultationBooking{
		ExpertID: expertID, Date: "2026-09-02", TimeSlot: "14:00", Name: "C",
	}
	if err := repos.Booking.Create(ctx, booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := repos.Booking.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}

	got, err := repos.Booking.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", got.Status)
	}

	if err := repos.Booking.UpdateStatus(ctx, "missing", models.BookingStatusCancelled); err == nil {
		t.Error("UpdateStatus() should fail for an unknown booking")
	}
}
