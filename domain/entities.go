package domain

import "time"

// Account represents a registered user identity
type Account struct {
	ID           uint
	FullName     string
	Email        string
	Phone        string
	PasswordHash string `gorm:"column:password_hash"`
	DateOfBirth  time.Time
	Gender       string
	Activated    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegistrationInput carries the identity fields collected at registration
type RegistrationInput struct {
	FullName    string
	Email       string
	Phone       string
	DateOfBirth time.Time
	Gender      string
}

// OneTimeCode is the ephemeral verification artifact issued during registration.
// A consumed record is kept as proof of verification until registration completes.
type OneTimeCode struct {
	Code      string    `json:"code"`
	AccountID uint      `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Consumed  bool      `json:"consumed"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the code's expiry has passed
func (c *OneTimeCode) Expired() bool {
	return c.ExpiresAt.Before(time.Now())
}

// RefreshToken is a stored, client-bound session continuation credential
type RefreshToken struct {
	ID        uint
	AccountID uint
	Value     string
	ClientIP  string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the token's expiry has passed
func (t *RefreshToken) Expired() bool {
	return t.ExpiresAt.Before(time.Now())
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	Account      *Account
	AccessToken  string
	RefreshToken string
	Authorities  string
	ExpiresIn    int64
}
