package mocks

import (
	"context"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// MockRegistrationService implements domain.RegistrationService for testing
type MockRegistrationService struct {
	RegisterFunc    func(ctx context.Context, input domain.RegistrationInput) (*domain.Account, error)
	SubmitCodeFunc  func(ctx context.Context, phone, code string) (bool, error)
	SetPasswordFunc func(ctx context.Context, phone, password string) error
	ResendFunc      func(ctx context.Context, phone string) error
}

// NewMockRegistrationService creates a new MockRegistrationService with default behaviors
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

// Register creates a pending account
func (m *MockRegistrationService) Register(ctx context.Context, input domain.RegistrationInput) (*domain.Account, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	// Default behavior: pending account
	return &domain.Account{ID: 1, FullName: input.FullName, Email: input.Email, Phone: input.Phone}, nil
}

// SubmitCode verifies a code
func (m *MockRegistrationService) SubmitCode(ctx context.Context, phone, code string) (bool, error) {
	if m.SubmitCodeFunc != nil {
		return m.SubmitCodeFunc(ctx, phone, code)
	}
	// Default behavior: failure
	return false, nil
}

// SetPassword finalizes registration
func (m *MockRegistrationService) SetPassword(ctx context.Context, phone, password string) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, phone, password)
	}
	// Default behavior: success
	return nil
}

// Resend re-issues a code
func (m *MockRegistrationService) Resend(ctx context.Context, phone string) error {
	if m.ResendFunc != nil {
		return m.ResendFunc(ctx, phone)
	}
	// Default behavior: success
	return nil
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	LoginFunc              func(ctx context.Context, email, password, clientIP string) (*domain.AuthResult, error)
	RefreshAccessTokenFunc func(ctx context.Context, refreshToken, clientIP string) (string, error)
	CurrentAccountFunc     func(ctx context.Context, email string) (*domain.Account, error)
	LogoutFunc             func(ctx context.Context, accountID uint) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates an account
func (m *MockAuthService) Login(ctx context.Context, email, password, clientIP string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, clientIP)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// RefreshAccessToken mints a new access token
func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken, clientIP string) (string, error) {
	if m.RefreshAccessTokenFunc != nil {
		return m.RefreshAccessTokenFunc(ctx, refreshToken, clientIP)
	}
	// Default behavior: invalid
	return "", domain.ErrInvalidRefreshToken
}

// CurrentAccount resolves the authenticated subject
func (m *MockAuthService) CurrentAccount(ctx context.Context, email string) (*domain.Account, error) {
	if m.CurrentAccountFunc != nil {
		return m.CurrentAccountFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// Logout deletes the account's refresh tokens
func (m *MockAuthService) Logout(ctx context.Context, accountID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}
