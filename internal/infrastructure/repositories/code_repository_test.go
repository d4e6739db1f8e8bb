package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func TestCodeRepositoryImpl_SaveAndFind(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewCodeRepository(client, 24*time.Hour)
	ctx := context.Background()

	code := &domain.OneTimeCode{
		Code:      "4821",
		AccountID: 1,
		ExpiresAt: time.Now().Add(5 * time.Minute).Truncate(time.Second),
		Consumed:  false,
		CreatedAt: time.Now().Truncate(time.Second),
	}

	if err := repo.Save(ctx, code); err != nil {
		t.Fatalf("failed to save code: %v", err)
	}

	found, err := repo.FindByAccount(ctx, 1)
	if err != nil {
		t.Fatalf("failed to find code: %v", err)
	}
	if found.Code != "4821" {
		t.Errorf("expected code 4821, got %s", found.Code)
	}
	if found.Consumed {
		t.Error("new code should not be consumed")
	}
}

func TestCodeRepositoryImpl_FindByAccount_Missing(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewCodeRepository(client, 24*time.Hour)

	if _, err := repo.FindByAccount(context.Background(), 99); err != domain.ErrCodeNotFound {
		t.Errorf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestCodeRepositoryImpl_SaveOverwrites(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewCodeRepository(client, 24*time.Hour)
	ctx := context.Background()

	first := &domain.OneTimeCode{Code: "1111", AccountID: 1, ExpiresAt: time.Now().Add(5 * time.Minute)}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("failed to save first code: %v", err)
	}

	second := &domain.OneTimeCode{Code: "2222", AccountID: 1, ExpiresAt: time.Now().Add(5 * time.Minute)}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("failed to save second code: %v", err)
	}

	found, err := repo.FindByAccount(ctx, 1)
	if err != nil {
		t.Fatalf("failed to find code: %v", err)
	}
	if found.Code != "2222" {
		t.Errorf("expected newest code 2222, got %s", found.Code)
	}
}

func TestCodeRepositoryImpl_ConsumedFlagPersists(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewCodeRepository(client, 24*time.Hour)
	ctx := context.Background()

	code := &domain.OneTimeCode{Code: "4821", AccountID: 1, ExpiresAt: time.Now().Add(5 * time.Minute)}
	if err := repo.Save(ctx, code); err != nil {
		t.Fatalf("failed to save code: %v", err)
	}

	code.Consumed = true
	if err := repo.Save(ctx, code); err != nil {
		t.Fatalf("failed to persist consumed flag: %v", err)
	}

	found, err := repo.FindByAccount(ctx, 1)
	if err != nil {
		t.Fatalf("failed to find code: %v", err)
	}
	if !found.Consumed {
		t.Error("consumed flag should persist")
	}
}

func TestCodeRepositoryImpl_Delete(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewCodeRepository(client, 24*time.Hour)
	ctx := context.Background()

	code := &domain.OneTimeCode{Code: "4821", AccountID: 1, ExpiresAt: time.Now().Add(5 * time.Minute)}
	if err := repo.Save(ctx, code); err != nil {
		t.Fatalf("failed to save code: %v", err)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("failed to delete code: %v", err)
	}
	if _, err := repo.FindByAccount(ctx, 1); err != domain.ErrCodeNotFound {
		t.Errorf("expected ErrCodeNotFound after delete, got %v", err)
	}

	// Deleting an absent record is not an error
	if err := repo.Delete(ctx, 1); err != nil {
		t.Errorf("delete of missing record should succeed, got %v", err)
	}
}

func TestCodeRepositoryImpl_RecordsAreIsolatedPerAccount(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewCodeRepository(client, 24*time.Hour)
	ctx := context.Background()

	// The same code value may be live for two accounts at once
	for _, accountID := range []uint{1, 2} {
		code := &domain.OneTimeCode{Code: "4821", AccountID: accountID, ExpiresAt: time.Now().Add(5 * time.Minute)}
		if err := repo.Save(ctx, code); err != nil {
			t.Fatalf("failed to save code for account %d: %v", accountID, err)
		}
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("failed to delete code: %v", err)
	}

	if _, err := repo.FindByAccount(ctx, 2); err != nil {
		t.Errorf("account 2's code should be unaffected, got %v", err)
	}
}
