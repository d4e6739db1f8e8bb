package mocks

import (
	"context"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// MockCodeRepository implements domain.CodeRepository for testing
type MockCodeRepository struct {
	SaveFunc          func(ctx context.Context, code *domain.OneTimeCode) error
	FindByAccountFunc func(ctx context.Context, accountID uint) (*domain.OneTimeCode, error)
	DeleteFunc        func(ctx context.Context, accountID uint) error
}

// NewMockCodeRepository creates a new MockCodeRepository with default behaviors
func NewMockCodeRepository() *MockCodeRepository {
	return &MockCodeRepository{}
}

// Save stores a code record
func (m *MockCodeRepository) Save(ctx context.Context, code *domain.OneTimeCode) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, code)
	}
	// Default behavior: success
	return nil
}

// FindByAccount finds the code record for an account
func (m *MockCodeRepository) FindByAccount(ctx context.Context, accountID uint) (*domain.OneTimeCode, error) {
	if m.FindByAccountFunc != nil {
		return m.FindByAccountFunc(ctx, accountID)
	}
	// Default behavior: not found
	return nil, domain.ErrCodeNotFound
}

// Delete removes the code record for an account
func (m *MockCodeRepository) Delete(ctx context.Context, accountID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}
