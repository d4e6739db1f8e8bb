package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	refreshSvc  domain.RefreshTokenService
	auditLog    domain.AuditLogger
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	refreshSvc domain.RefreshTokenService,
	auditLog domain.AuditLogger,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		refreshSvc:  refreshSvc,
		auditLog:    auditLog,
		accessTTL:   accessTTL,
	}
}

// Login implements domain.AuthService. An unactivated account with a correct
// password fails distinctly from a credential mismatch so the client can
// route the user back into the verification flow.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password, clientIP string) (*domain.AuthResult, error) {
	account, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		s.auditLog.Log(&domain.AuditEvent{
			EventType: domain.LoginFailedEvent,
			Email:     email,
			ClientIP:  clientIP,
			ErrorMsg:  err.Error(),
		})
		return nil, err
	}

	// Re-resolve the authenticated principal. Failing here means a broken
	// state assumption, not bad credentials.
	account, err = s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !account.Activated {
		s.auditLog.Log(&domain.AuditEvent{
			EventType: domain.LoginFailedEvent,
			AccountID: account.ID,
			Email:     email,
			ClientIP:  clientIP,
			ErrorMsg:  domain.ErrAccountNotActivated.Error(),
		})
		return nil, domain.ErrAccountNotActivated
	}

	authorities := s.deriveAuthorities(account)

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.Email, authorities)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.refreshSvc.CreateOrRotate(ctx, account, clientIP)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.LoginEvent,
		AccountID: account.ID,
		Email:     email,
		ClientIP:  clientIP,
		Success:   true,
	})

	return &domain.AuthResult{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Value,
		Authorities:  authorities,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// verifyCredentials checks email and password only; activation state is
// deliberately not checked here
func (s *AuthServiceImpl) verifyCredentials(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return account, nil
}

// RefreshAccessToken implements domain.AuthService. The refresh token is not
// rotated here, and authorities are not re-derived from current account
// state; a privilege change shows up on the next full login.
func (s *AuthServiceImpl) RefreshAccessToken(ctx context.Context, refreshToken, clientIP string) (string, error) {
	token, err := s.refreshSvc.FindByValue(ctx, refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	if !s.refreshSvc.IsValid(token, clientIP) {
		return "", domain.ErrInvalidRefreshToken
	}

	account, err := s.accountRepo.FindByID(ctx, token.AccountID)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(account.Email, "")
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.TokenRefreshEvent,
		AccountID: account.ID,
		Email:     account.Email,
		ClientIP:  clientIP,
		Success:   true,
	})

	return accessToken, nil
}

// CurrentAccount implements domain.AuthService. The authenticated subject is
// passed explicitly by the transport layer rather than read from ambient
// request state.
func (s *AuthServiceImpl) CurrentAccount(ctx context.Context, email string) (*domain.Account, error) {
	return s.accountRepo.FindByEmail(ctx, email)
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, accountID uint) error {
	if err := s.refreshSvc.DeleteByAccount(ctx, accountID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.LogoutEvent,
		AccountID: accountID,
		Success:   true,
	})

	return nil
}

// deriveAuthorities maps the resolved identity to an authorities string.
// Every authenticated account carries the same single authority for now.
func (s *AuthServiceImpl) deriveAuthorities(account *domain.Account) string {
	if !account.Activated {
		return ""
	}
	return "ROLE_USER"
}
