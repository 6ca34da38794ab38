package repository

import (
	"context"
	"testing"

	"github.com/yochanchan/yorizo-back/internal/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	user := &models.User{
		ExternalID: strPtr("auth0|12345"),
		Nickname:   strPtr("太郎"),
	}
	if err := repos.User.Create(ctx, user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Create() should assign an ID")
	}

	got, err := repos.User.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got == nil {
		t.Fatal("GetByID() returned nil for existing user")
	}
	if got.Nickname == nil || *got.Nickname != "太郎" {
		t.Errorf("Nickname = %v, want 太郎", got.Nickname)
	}
	if got.CreatedAt == nil {
		t.Error("CreatedAt should be set")
	}

	byExternal, err := repos.User.GetByExternalID(ctx, "auth0|12345")
	if err != nil {
		t.Fatalf("GetByExternalID() error: %v", err)
	}
	if byExternal == nil || byExternal.ID != user.ID {
		t.Errorf("GetByExternalID() = %v, want user %s", byExternal, user.ID)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)

	got, err := repos.User.GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got != nil {
		t.Errorf("GetByID() = %v, want nil for missing user", got)
	}
}

func TestUserRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	count, err := repos.User.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d on empty database, want 0", count)
	}

	createTestUser(t, repos)
	createTestUser(t, repos)

	count, err = repos.User.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}
