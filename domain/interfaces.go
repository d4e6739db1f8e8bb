package domain

import "context"

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByPhone(ctx context.Context, phone string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	Update(ctx context.Context, account *Account) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// CodeRepository defines one-time-code data access operations.
// At most one record exists per account; Save replaces any prior record.
type CodeRepository interface {
	Save(ctx context.Context, code *OneTimeCode) error
	FindByAccount(ctx context.Context, accountID uint) (*OneTimeCode, error)
	Delete(ctx context.Context, accountID uint) error
}

// RefreshTokenRepository defines refresh-token data access operations
type RefreshTokenRepository interface {
	Save(ctx context.Context, token *RefreshToken) error
	FindByValue(ctx context.Context, value string) (*RefreshToken, error)
	FindByAccountAndClientIP(ctx context.Context, accountID uint, clientIP string) (*RefreshToken, error)
	FindAllByAccountOrderByExpiry(ctx context.Context, accountID uint) ([]*RefreshToken, error)
	Delete(ctx context.Context, id uint) error
	DeleteByAccount(ctx context.Context, accountID uint) error
}

// OTPService defines the one-time-code lifecycle
type OTPService interface {
	Issue(ctx context.Context, account *Account) (*OneTimeCode, error)
	Verify(ctx context.Context, code, phone string) (bool, error)
	Resend(ctx context.Context, phone string) error
	Delete(ctx context.Context, accountID uint) error
}

// RegistrationService orchestrates the pending -> verified -> active lifecycle
type RegistrationService interface {
	Register(ctx context.Context, input RegistrationInput) (*Account, error)
	SubmitCode(ctx context.Context, phone, code string) (bool, error)
	SetPassword(ctx context.Context, phone, password string) error
	Resend(ctx context.Context, phone string) error
}

// RefreshTokenService manages stored, client-bound refresh tokens
type RefreshTokenService interface {
	CreateOrRotate(ctx context.Context, account *Account, clientIP string) (*RefreshToken, error)
	FindByValue(ctx context.Context, value string) (*RefreshToken, error)
	IsValid(token *RefreshToken, clientIP string) bool
	DeleteByAccount(ctx context.Context, accountID uint) error
}

// AuthService defines login and session operations
type AuthService interface {
	Login(ctx context.Context, email, password, clientIP string) (*AuthResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken, clientIP string) (string, error)
	CurrentAccount(ctx context.Context, email string) (*Account, error)
	Logout(ctx context.Context, accountID uint) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines stateless access-token operations
type TokenService interface {
	GenerateAccessToken(subject, authorities string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// NotificationService defines code delivery operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// TokenClaims represents validated access-token claims
type TokenClaims struct {
	Subject     string `json:"sub"`
	Authorities string `json:"authorities"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}
