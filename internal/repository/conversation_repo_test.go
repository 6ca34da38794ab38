package repository

import (
	"context"
	"testing"

	"github.com/yochanchan/yorizo-back/internal/models"
)

func TestConversationRepository_CreateAndMessages(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	userID := createTestUser(t, repos)

	conv := &models.Conversation{
		UserID:      &userID,
		Title:       strPtr("売上についての相談"),
		MainConcern: strPtr("売上が伸び悩んでいる \U0001F4C9"),
		Status:      strPtr(string(models.ConversationStatusActive)),
	}
	if err := repos.Conversation.Create(ctx, conv); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	for i, m := range []struct {
		role, content string
	}{
		{"user", "最近売上が落ちています"},
		{"assistant", "詳しく教えてください"},
		{"user", "客数が減っています \U0001F62F"},
	} {
		msg := &models.Message{ConversationID: conv.ID, Role: m.role, Content: m.content}
		if err := repos.Conversation.CreateMessage(ctx, msg); err != nil {
			t.Fatalf("CreateMessage(%d) error: %v", i, err)
		}
	}

	msgs, err := repos.Conversation.ListMessages(ctx, conv.ID)
	if err != nil {
		t.Fatalf("ListMessages() error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("ListMessages() returned %d messages, want 3", len(msgs))
	}
	if msgs[2].Content != "客数が減っています \U0001F62F" {
		t.Errorf("message content = %q, emoji did not survive", msgs[2].Content)
	}

	got, err := repos.Conversation.GetByID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got == nil || got.MainConcern == nil || *got.MainConcern != *conv.MainConcern {
		t.Errorf("GetByID() MainConcern = %v, want %q", got.MainConcern, *conv.MainConcern)
	}

	list, err := repos.Conversation.ListByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUserID() error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("ListByUserID() returned %d conversations, want 1", len(list))
	}
}

func TestConversationRepository_MessageRequiresConversation(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	msg := &models.Message{ConversationID: "missing", Role: "user", Content: "hello"}
	if err := repos.Conversation.CreateMessage(context.Background(), msg); err == nil {
		t.Error("CreateMessage() should fail for an unknown conversation")
	}
}

func TestConversationRepository_MemoUpsert(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	userID := createTestUser(t, repos)

	conv := &models.Conversation{UserID: &userID}
	if err := repos.Conversation.Create(ctx, conv); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	memo := &models.ConsultationMemo{
		ConversationID: conv.ID,
		CurrentPoints:  strPtr("売上減少の原因分析"),
	}
	if err := repos.Conversation.UpsertMemo(ctx, memo); err != nil {
		t.Fatalf("UpsertMemo() insert error: %v", err)
	}

	memo.CurrentPoints = strPtr("客単価の改善策を検討")
	memo.ImportantPoints = strPtr("常連客を大切に")
	if err := repos.Conversation.UpsertMemo(ctx, memo); err != nil {
		t.Fatalf("UpsertMemo() update error: %v", err)
	}

	got, err := repos.Conversation.GetMemo(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetMemo() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetMemo() returned nil")
	}
	if *got.CurrentPoints != "客単価の改善策を検討" {
		t.Errorf("CurrentPoints = %q after upsert", *got.CurrentPoints)
	}

	// Still one memo row for the conversation.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM consultation_memos WHERE conversation_id = ?", conv.ID).Scan(&count); err != nil {
		t.Fatalf("count memos: %v", err)
	}
	if count != 1 {
		t.Errorf("%d memo rows, want 1", count)
	}
}
