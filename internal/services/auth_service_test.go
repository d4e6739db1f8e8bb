package services

import (
	"context"
	"testing"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
	"github.com/tienLD2005/hotel-booking-auth/internal/mocks"
)

func createAuthServiceForTest(t *testing.T) (domain.AuthService, *mocks.MockAccountRepository, *mocks.MockPasswordService, *mocks.MockTokenService, *mocks.MockRefreshTokenService) {
	t.Helper()

	accountRepo := mocks.NewMockAccountRepository()
	passwordSvc := mocks.NewMockPasswordService()
	tokenSvc := mocks.NewMockTokenService()
	refreshSvc := mocks.NewMockRefreshTokenService()

	svc := NewAuthService(accountRepo, passwordSvc, tokenSvc, refreshSvc, mocks.NewMockAuditLogger(), 15*time.Minute)
	return svc, accountRepo, passwordSvc, tokenSvc, refreshSvc
}

func activatedAccount() *domain.Account {
	return &domain.Account{
		ID:           1,
		FullName:     "Alice Nguyen",
		Email:        "alice@gmail.com",
		Phone:        "0123456789",
		PasswordHash: "hashed:P@ss123",
		Activated:    true,
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		account       *domain.Account
		password      string
		expectedError error
	}{
		{
			name:          "unknown email",
			account:       nil,
			password:      "P@ss123",
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:          "wrong password",
			account:       activatedAccount(),
			password:      "wrong",
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name: "correct password but not activated",
			account: &domain.Account{
				ID:           1,
				Email:        "alice@gmail.com",
				PasswordHash: "hashed:P@ss123",
				Activated:    false,
			},
			password:      "P@ss123",
			expectedError: domain.ErrAccountNotActivated,
		},
		{
			name:     "successful login",
			account:  activatedAccount(),
			password: "P@ss123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, _, _, _ := createAuthServiceForTest(t)

			if tt.account != nil {
				accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
					return tt.account, nil
				}
			}

			result, err := svc.Login(context.Background(), "alice@gmail.com", tt.password, "10.0.0.1")
			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.AccessToken == "" {
				t.Error("expected access token")
			}
			if result.RefreshToken == "" {
				t.Error("expected refresh token")
			}
			if result.Account.Email != "alice@gmail.com" {
				t.Errorf("expected account in bundle, got %v", result.Account)
			}
			if result.ExpiresIn != int64((15 * time.Minute).Seconds()) {
				t.Errorf("expected expires_in 900, got %d", result.ExpiresIn)
			}
		})
	}
}

func TestAuthServiceImpl_Login_IssuesRefreshTokenWithClientBinding(t *testing.T) {
	svc, accountRepo, _, _, refreshSvc := createAuthServiceForTest(t)

	accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		return activatedAccount(), nil
	}

	var boundIP string
	refreshSvc.CreateOrRotateFunc = func(ctx context.Context, account *domain.Account, clientIP string) (*domain.RefreshToken, error) {
		boundIP = clientIP
		return &domain.RefreshToken{AccountID: account.ID, Value: "refresh-value", ClientIP: clientIP}, nil
	}

	if _, err := svc.Login(context.Background(), "alice@gmail.com", "P@ss123", "203.0.113.9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if boundIP != "203.0.113.9" {
		t.Errorf("refresh token must be bound to the login client, got %q", boundIP)
	}
}

func TestAuthServiceImpl_RefreshAccessToken(t *testing.T) {
	tests := []struct {
		name          string
		token         *domain.RefreshToken
		clientIP      string
		expectedError error
	}{
		{
			name:          "unknown token",
			token:         nil,
			clientIP:      "10.0.0.1",
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name: "client address mismatch",
			token: &domain.RefreshToken{
				AccountID: 1, Value: "v", ClientIP: "10.0.0.1",
				ExpiresAt: time.Now().Add(time.Hour),
			},
			clientIP:      "10.0.0.2",
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name: "expired token",
			token: &domain.RefreshToken{
				AccountID: 1, Value: "v", ClientIP: "10.0.0.1",
				ExpiresAt: time.Now().Add(-time.Minute),
			},
			clientIP:      "10.0.0.1",
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name: "valid token",
			token: &domain.RefreshToken{
				AccountID: 1, Value: "v", ClientIP: "10.0.0.1",
				ExpiresAt: time.Now().Add(time.Hour),
			},
			clientIP: "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, accountRepo, _, _, refreshSvc := createAuthServiceForTest(t)

			if tt.token != nil {
				refreshSvc.FindByValueFunc = func(ctx context.Context, value string) (*domain.RefreshToken, error) {
					return tt.token, nil
				}
			}
			accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
				return activatedAccount(), nil
			}

			accessToken, err := svc.RefreshAccessToken(context.Background(), "v", tt.clientIP)
			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if accessToken == "" {
				t.Error("expected new access token")
			}
		})
	}
}

func TestAuthServiceImpl_RefreshAccessToken_DoesNotRotate(t *testing.T) {
	svc, accountRepo, _, _, refreshSvc := createAuthServiceForTest(t)

	refreshSvc.FindByValueFunc = func(ctx context.Context, value string) (*domain.RefreshToken, error) {
		return &domain.RefreshToken{
			AccountID: 1, Value: "v", ClientIP: "10.0.0.1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	accountRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Account, error) {
		return activatedAccount(), nil
	}

	rotated := false
	refreshSvc.CreateOrRotateFunc = func(ctx context.Context, account *domain.Account, clientIP string) (*domain.RefreshToken, error) {
		rotated = true
		return nil, nil
	}

	if _, err := svc.RefreshAccessToken(context.Background(), "v", "10.0.0.1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rotated {
		t.Error("refresh must not rotate the refresh token")
	}
}

func TestAuthServiceImpl_CurrentAccount(t *testing.T) {
	svc, accountRepo, _, _, _ := createAuthServiceForTest(t)

	accountRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		if email == "alice@gmail.com" {
			return activatedAccount(), nil
		}
		return nil, domain.ErrAccountNotFound
	}

	account, err := svc.CurrentAccount(context.Background(), "alice@gmail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != 1 {
		t.Errorf("expected account 1, got %d", account.ID)
	}

	if _, err := svc.CurrentAccount(context.Background(), "ghost@gmail.com"); err != domain.ErrAccountNotFound {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	svc, _, _, _, refreshSvc := createAuthServiceForTest(t)

	var deletedAccount uint
	refreshSvc.DeleteByAccountFunc = func(ctx context.Context, accountID uint) error {
		deletedAccount = accountID
		return nil
	}

	if err := svc.Logout(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deletedAccount != 1 {
		t.Errorf("expected tokens for account 1 deleted, got %d", deletedAccount)
	}
}
