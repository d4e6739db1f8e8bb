package domain

import "errors"

// Registration errors
var (
	ErrDuplicateIdentity = errors.New("email or phone number already registered")
	ErrAccountNotFound   = errors.New("account not found")
	ErrCodeNotFound      = errors.New("no one-time code found for account")
	ErrCodeNotVerified   = errors.New("one-time code has not been verified")
)

// Authentication errors
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountNotActivated = errors.New("account has not completed registration")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
