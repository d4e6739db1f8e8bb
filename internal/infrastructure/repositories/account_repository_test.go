package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBAccount{}, &DBRefreshToken{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email, phone string, activated bool) *DBAccount {
	t.Helper()

	account := &DBAccount{
		FullName:     "Alice Nguyen",
		Email:        email,
		Phone:        phone,
		PasswordHash: "hashed_password",
		DateOfBirth:  time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC),
		Gender:       "F",
		Activated:    activated,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return account
}

func TestAccountRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := &domain.Account{
		FullName:     "Alice Nguyen",
		Email:        "alice@gmail.com",
		Phone:        "0123456789",
		PasswordHash: "placeholder",
		DateOfBirth:  time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC),
		Gender:       "F",
		Activated:    false,
	}

	if err := repo.Create(ctx, account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	if account.ID == 0 {
		t.Fatal("expected ID to be assigned on create")
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@gmail.com")
	if err != nil {
		t.Fatalf("failed to find by email: %v", err)
	}
	if byEmail.Phone != "0123456789" {
		t.Errorf("expected phone 0123456789, got %s", byEmail.Phone)
	}
	if byEmail.Activated {
		t.Error("new account should not be activated")
	}

	byPhone, err := repo.FindByPhone(ctx, "0123456789")
	if err != nil {
		t.Fatalf("failed to find by phone: %v", err)
	}
	if byPhone.ID != account.ID {
		t.Errorf("expected ID %d, got %d", account.ID, byPhone.ID)
	}

	byID, err := repo.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("failed to find by ID: %v", err)
	}
	if byID.Email != "alice@gmail.com" {
		t.Errorf("expected email alice@gmail.com, got %s", byID.Email)
	}
}

func TestAccountRepositoryImpl_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "missing@gmail.com"); err != domain.ErrAccountNotFound {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
	if _, err := repo.FindByPhone(ctx, "0000000000"); err != domain.ErrAccountNotFound {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 42); err != domain.ErrAccountNotFound {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepositoryImpl_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	seedAccount(t, db, "alice@gmail.com", "0123456789", false)

	tests := []struct {
		name     string
		check    func() (bool, error)
		expected bool
	}{
		{"existing email", func() (bool, error) { return repo.ExistsByEmail(ctx, "alice@gmail.com") }, true},
		{"missing email", func() (bool, error) { return repo.ExistsByEmail(ctx, "bob@gmail.com") }, false},
		{"existing phone", func() (bool, error) { return repo.ExistsByPhone(ctx, "0123456789") }, true},
		{"missing phone", func() (bool, error) { return repo.ExistsByPhone(ctx, "0987654321") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestAccountRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	seeded := seedAccount(t, db, "alice@gmail.com", "0123456789", false)

	account, err := repo.FindByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("failed to find account: %v", err)
	}

	account.PasswordHash = "new_hash"
	account.Activated = true
	if err := repo.Update(ctx, account); err != nil {
		t.Fatalf("failed to update account: %v", err)
	}

	updated, err := repo.FindByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	if !updated.Activated {
		t.Error("expected account to be activated")
	}
	if updated.PasswordHash != "new_hash" {
		t.Errorf("expected new_hash, got %s", updated.PasswordHash)
	}
}

func TestAccountRepositoryImpl_UniqueConstraints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	seedAccount(t, db, "alice@gmail.com", "0123456789", false)

	dup := &domain.Account{
		FullName:     "Another Alice",
		Email:        "alice@gmail.com",
		Phone:        "0999999999",
		PasswordHash: "x",
	}
	if err := repo.Create(ctx, dup); err == nil {
		t.Error("expected unique email violation, got nil")
	}

	dupPhone := &domain.Account{
		FullName:     "Bob Tran",
		Email:        "bob@gmail.com",
		Phone:        "0123456789",
		PasswordHash: "x",
	}
	if err := repo.Create(ctx, dupPhone); err == nil {
		t.Error("expected unique phone violation, got nil")
	}
}
