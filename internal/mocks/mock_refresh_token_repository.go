package mocks

import (
	"context"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository for testing
type MockRefreshTokenRepository struct {
	SaveFunc                          func(ctx context.Context, token *domain.RefreshToken) error
	FindByValueFunc                   func(ctx context.Context, value string) (*domain.RefreshToken, error)
	FindByAccountAndClientIPFunc      func(ctx context.Context, accountID uint, clientIP string) (*domain.RefreshToken, error)
	FindAllByAccountOrderByExpiryFunc func(ctx context.Context, accountID uint) ([]*domain.RefreshToken, error)
	DeleteFunc                        func(ctx context.Context, id uint) error
	DeleteByAccountFunc               func(ctx context.Context, accountID uint) error
}

// NewMockRefreshTokenRepository creates a new MockRefreshTokenRepository with default behaviors
func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{}
}

// Save stores a refresh token
func (m *MockRefreshTokenRepository) Save(ctx context.Context, token *domain.RefreshToken) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// FindByValue finds a refresh token by its opaque value
func (m *MockRefreshTokenRepository) FindByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	if m.FindByValueFunc != nil {
		return m.FindByValueFunc(ctx, value)
	}
	// Default behavior: not found
	return nil, domain.ErrInvalidRefreshToken
}

// FindByAccountAndClientIP finds a token bound to an account and client address
func (m *MockRefreshTokenRepository) FindByAccountAndClientIP(ctx context.Context, accountID uint, clientIP string) (*domain.RefreshToken, error) {
	if m.FindByAccountAndClientIPFunc != nil {
		return m.FindByAccountAndClientIPFunc(ctx, accountID, clientIP)
	}
	// Default behavior: not found
	return nil, domain.ErrInvalidRefreshToken
}

// FindAllByAccountOrderByExpiry lists an account's tokens soonest-expiring first
func (m *MockRefreshTokenRepository) FindAllByAccountOrderByExpiry(ctx context.Context, accountID uint) ([]*domain.RefreshToken, error) {
	if m.FindAllByAccountOrderByExpiryFunc != nil {
		return m.FindAllByAccountOrderByExpiryFunc(ctx, accountID)
	}
	// Default behavior: no tokens
	return nil, nil
}

// Delete removes a token by ID
func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// DeleteByAccount removes all tokens for an account
func (m *MockRefreshTokenRepository) DeleteByAccount(ctx context.Context, accountID uint) error {
	if m.DeleteByAccountFunc != nil {
		return m.DeleteByAccountFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}
