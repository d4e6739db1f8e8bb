package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// RefreshTokenServiceImpl implements domain.RefreshTokenService
type RefreshTokenServiceImpl struct {
	tokenRepo domain.RefreshTokenRepository
	config    RefreshTokenConfig
}

type RefreshTokenConfig struct {
	TTL            time.Duration
	RetentionLimit int
}

// NewRefreshTokenService creates a new refresh-token service
func NewRefreshTokenService(tokenRepo domain.RefreshTokenRepository, config RefreshTokenConfig) domain.RefreshTokenService {
	return &RefreshTokenServiceImpl{
		tokenRepo: tokenRepo,
		config:    config,
	}
}

// CreateOrRotate implements domain.RefreshTokenService. A token already bound
// to the same client is rotated in place (fresh value and expiry); otherwise
// a new record is created after the retention limit has been enforced, so the
// account never ends up holding more than the limit.
func (s *RefreshTokenServiceImpl) CreateOrRotate(ctx context.Context, account *domain.Account, clientIP string) (*domain.RefreshToken, error) {
	token, err := s.tokenRepo.FindByAccountAndClientIP(ctx, account.ID, clientIP)
	if err != nil && err != domain.ErrInvalidRefreshToken {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if token == nil {
		if err := s.enforceRetentionLimit(ctx, account.ID); err != nil {
			return nil, err
		}
		token = &domain.RefreshToken{
			AccountID: account.ID,
			ClientIP:  clientIP,
		}
	}

	token.Value = uuid.NewString()
	token.ClientIP = clientIP
	token.ExpiresAt = time.Now().Add(s.config.TTL)

	if err := s.tokenRepo.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return token, nil
}

// enforceRetentionLimit evicts the soonest-expiring token when the account is
// at or above the retention limit
func (s *RefreshTokenServiceImpl) enforceRetentionLimit(ctx context.Context, accountID uint) error {
	tokens, err := s.tokenRepo.FindAllByAccountOrderByExpiry(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to list refresh tokens: %w", err)
	}

	if len(tokens) >= s.config.RetentionLimit {
		if err := s.tokenRepo.Delete(ctx, tokens[0].ID); err != nil {
			return fmt.Errorf("failed to evict refresh token: %w", err)
		}
	}

	return nil
}

// FindByValue implements domain.RefreshTokenService
func (s *RefreshTokenServiceImpl) FindByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	return s.tokenRepo.FindByValue(ctx, value)
}

// IsValid implements domain.RefreshTokenService. An address mismatch is
// invalid, not an error: the caller must re-authenticate via full login.
func (s *RefreshTokenServiceImpl) IsValid(token *domain.RefreshToken, clientIP string) bool {
	return !token.Expired() && token.ClientIP == clientIP
}

// DeleteByAccount implements domain.RefreshTokenService
func (s *RefreshTokenServiceImpl) DeleteByAccount(ctx context.Context, accountID uint) error {
	return s.tokenRepo.DeleteByAccount(ctx, accountID)
}
