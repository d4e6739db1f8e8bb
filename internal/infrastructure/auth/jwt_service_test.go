package auth

import (
	"testing"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret-key", "hotel-booking-auth", 15*time.Minute)

	token, err := svc.GenerateAccessToken("alice@gmail.com", "ROLE_USER")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Subject != "alice@gmail.com" {
		t.Errorf("expected subject alice@gmail.com, got %s", claims.Subject)
	}
	if claims.Authorities != "ROLE_USER" {
		t.Errorf("expected authorities ROLE_USER, got %s", claims.Authorities)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Error("expiry should be after issue time")
	}
}

func TestJWTServiceImpl_EmptyAuthorities(t *testing.T) {
	svc := NewJWTService("test-secret-key", "hotel-booking-auth", 15*time.Minute)

	token, err := svc.GenerateAccessToken("bob@gmail.com", "")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Authorities != "" {
		t.Errorf("expected empty authorities, got %s", claims.Authorities)
	}
}

func TestJWTServiceImpl_ValidateAccessToken_Errors(t *testing.T) {
	svc := NewJWTService("test-secret-key", "hotel-booking-auth", 15*time.Minute)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not.a.jwt"
			},
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				other := NewJWTService("different-secret", "hotel-booking-auth", 15*time.Minute)
				token, err := other.GenerateAccessToken("alice@gmail.com", "")
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewJWTService("test-secret-key", "hotel-booking-auth", -time.Minute)
				token, err := expired.GenerateAccessToken("alice@gmail.com", "")
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateAccessToken(tt.token(t)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestJWTServiceImpl_ExpiredTokenError(t *testing.T) {
	svc := NewJWTService("test-secret-key", "hotel-booking-auth", -time.Minute)

	token, err := svc.GenerateAccessToken("alice@gmail.com", "")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	// jwt/v5 rejects expired tokens during parsing
	if _, err := svc.ValidateAccessToken(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
