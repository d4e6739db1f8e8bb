package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// RegistrationServiceImpl implements domain.RegistrationService
type RegistrationServiceImpl struct {
	accountRepo domain.AccountRepository
	codeRepo    domain.CodeRepository
	otpSvc      domain.OTPService
	passwordSvc domain.PasswordService
	auditLog    domain.AuditLogger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	accountRepo domain.AccountRepository,
	codeRepo domain.CodeRepository,
	otpSvc domain.OTPService,
	passwordSvc domain.PasswordService,
	auditLog domain.AuditLogger,
) domain.RegistrationService {
	return &RegistrationServiceImpl{
		accountRepo: accountRepo,
		codeRepo:    codeRepo,
		otpSvc:      otpSvc,
		passwordSvc: passwordSvc,
		auditLog:    auditLog,
	}
}

// Register implements domain.RegistrationService. The account is created
// deactivated with an unusable placeholder hash; the real password is only
// set after the code has been verified.
func (s *RegistrationServiceImpl) Register(ctx context.Context, input domain.RegistrationInput) (*domain.Account, error) {
	emailTaken, err := s.accountRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if emailTaken {
		return nil, domain.ErrDuplicateIdentity
	}

	phoneTaken, err := s.accountRepo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if phoneTaken {
		return nil, domain.ErrDuplicateIdentity
	}

	placeholder, err := s.placeholderHash()
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: placeholder,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		Activated:    false,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if _, err := s.otpSvc.Issue(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.AccountRegisteredEvent,
		AccountID: account.ID,
		Email:     account.Email,
		Phone:     account.Phone,
		Success:   true,
	})

	return account, nil
}

// SubmitCode implements domain.RegistrationService
func (s *RegistrationServiceImpl) SubmitCode(ctx context.Context, phone, code string) (bool, error) {
	return s.otpSvc.Verify(ctx, code, phone)
}

// SetPassword implements domain.RegistrationService. Requires a consumed code
// record for the account; finalizes the credential, activates the account and
// removes the code record.
func (s *RegistrationServiceImpl) SetPassword(ctx context.Context, phone, password string) error {
	account, err := s.accountRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}

	record, err := s.codeRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		return err
	}

	if !record.Consumed {
		return domain.ErrCodeNotVerified
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = hash
	account.Activated = true
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}

	if err := s.otpSvc.Delete(ctx, account.ID); err != nil {
		return fmt.Errorf("failed to remove verification code: %w", err)
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.AccountActivatedEvent,
		AccountID: account.ID,
		Email:     account.Email,
		Phone:     account.Phone,
		Success:   true,
	})

	return nil
}

// Resend implements domain.RegistrationService. Re-issuing is permitted even
// after a code has been verified; the fresh unconsumed code then supersedes
// the verified marker.
func (s *RegistrationServiceImpl) Resend(ctx context.Context, phone string) error {
	return s.otpSvc.Resend(ctx, phone)
}

// placeholderHash produces an unusable credential for a pending account.
// Nothing can log in against it because the raw value is random and discarded.
func (s *RegistrationServiceImpl) placeholderHash() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	return s.passwordSvc.Hash("pending:" + hex.EncodeToString(raw))
}
