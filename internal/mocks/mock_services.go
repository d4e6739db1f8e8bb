package mocks

import (
	"context"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: deterministic fake hash
	return "hashed:" + password, nil
}

// Verify checks a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: matches the fake hash scheme
	return hashedPassword == "hashed:"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(subject, authorities string) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken mints an access token
func (m *MockTokenService) GenerateAccessToken(subject, authorities string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(subject, authorities)
	}
	// Default behavior: deterministic fake token
	return "access:" + subject, nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error
	SentTo      []string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records the destination and delegates if configured
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.SentTo = append(m.SentTo, to)
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: success
	return nil
}

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc  func(ctx context.Context, account *domain.Account) (*domain.OneTimeCode, error)
	VerifyFunc func(ctx context.Context, code, phone string) (bool, error)
	ResendFunc func(ctx context.Context, phone string) error
	DeleteFunc func(ctx context.Context, accountID uint) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues a code
func (m *MockOTPService) Issue(ctx context.Context, account *domain.Account) (*domain.OneTimeCode, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, account)
	}
	// Default behavior: fixed code
	return &domain.OneTimeCode{Code: "0000", AccountID: account.ID}, nil
}

// Verify verifies a code
func (m *MockOTPService) Verify(ctx context.Context, code, phone string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, code, phone)
	}
	// Default behavior: failure
	return false, nil
}

// Resend re-issues a code
func (m *MockOTPService) Resend(ctx context.Context, phone string) error {
	if m.ResendFunc != nil {
		return m.ResendFunc(ctx, phone)
	}
	// Default behavior: success
	return nil
}

// Delete removes the code record for an account
func (m *MockOTPService) Delete(ctx context.Context, accountID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}

// MockRefreshTokenService implements domain.RefreshTokenService for testing
type MockRefreshTokenService struct {
	CreateOrRotateFunc  func(ctx context.Context, account *domain.Account, clientIP string) (*domain.RefreshToken, error)
	FindByValueFunc     func(ctx context.Context, value string) (*domain.RefreshToken, error)
	IsValidFunc         func(token *domain.RefreshToken, clientIP string) bool
	DeleteByAccountFunc func(ctx context.Context, accountID uint) error
}

// NewMockRefreshTokenService creates a new MockRefreshTokenService with default behaviors
func NewMockRefreshTokenService() *MockRefreshTokenService {
	return &MockRefreshTokenService{}
}

// CreateOrRotate issues or rotates a refresh token
func (m *MockRefreshTokenService) CreateOrRotate(ctx context.Context, account *domain.Account, clientIP string) (*domain.RefreshToken, error) {
	if m.CreateOrRotateFunc != nil {
		return m.CreateOrRotateFunc(ctx, account, clientIP)
	}
	// Default behavior: fixed token
	return &domain.RefreshToken{AccountID: account.ID, Value: "refresh-token", ClientIP: clientIP}, nil
}

// FindByValue finds a refresh token by value
func (m *MockRefreshTokenService) FindByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	if m.FindByValueFunc != nil {
		return m.FindByValueFunc(ctx, value)
	}
	// Default behavior: not found
	return nil, domain.ErrInvalidRefreshToken
}

// IsValid checks token expiry and client binding
func (m *MockRefreshTokenService) IsValid(token *domain.RefreshToken, clientIP string) bool {
	if m.IsValidFunc != nil {
		return m.IsValidFunc(token, clientIP)
	}
	return !token.Expired() && token.ClientIP == clientIP
}

// DeleteByAccount removes all tokens for an account
func (m *MockRefreshTokenService) DeleteByAccount(ctx context.Context, accountID uint) error {
	if m.DeleteByAccountFunc != nil {
		return m.DeleteByAccountFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}

// MockAuditLogger implements domain.AuditLogger for testing
type MockAuditLogger struct {
	Events []*domain.AuditEvent
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// Log records the event
func (m *MockAuditLogger) Log(event *domain.AuditEvent) {
	m.Events = append(m.Events, event)
}
