package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	codeRepo        domain.CodeRepository
	accountRepo     domain.AccountRepository
	notificationSvc domain.NotificationService
	auditLog        domain.AuditLogger
	config          OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(codeRepo domain.CodeRepository, accountRepo domain.AccountRepository, notificationSvc domain.NotificationService, auditLog domain.AuditLogger, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		codeRepo:        codeRepo,
		accountRepo:     accountRepo,
		notificationSvc: notificationSvc,
		auditLog:        auditLog,
		config:          config,
	}
}

// Issue implements domain.OTPService. Any prior code for the account is
// superseded: a fresh code is always produced, even when one is still live.
// Codes are only unique in combination with the owning account.
func (s *OTPServiceImpl) Issue(ctx context.Context, account *domain.Account) (*domain.OneTimeCode, error) {
	if err := s.codeRepo.Delete(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to remove prior code: %w", err)
	}

	value, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	code := &domain.OneTimeCode{
		Code:      value,
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Consumed:  false,
		CreatedAt: time.Now(),
	}

	if err := s.codeRepo.Save(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to store code: %w", err)
	}

	// Delivery is fire-and-forget: a failed SMS does not roll back the code,
	// the user can still request a resend.
	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", value, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendSMS(account.Phone, message); err != nil {
		log.Printf("OTP_DELIVERY_FAILED: account_id=%d phone=%s error=%v", account.ID, account.Phone, err)
		s.auditLog.Log(&domain.AuditEvent{
			EventType: domain.CodeDeliveryFailedEvent,
			AccountID: account.ID,
			Phone:     account.Phone,
			ErrorMsg:  err.Error(),
		})
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.CodeIssuedEvent,
		AccountID: account.ID,
		Phone:     account.Phone,
		Success:   true,
	})

	return code, nil
}

// Verify implements domain.OTPService. A mismatched, consumed, or expired
// code is an expected outcome and reported as false, not as an error; only
// store failures surface as errors. On success the record is marked consumed
// and kept as proof of verification for the set-password step.
func (s *OTPServiceImpl) Verify(ctx context.Context, code, phone string) (bool, error) {
	account, err := s.accountRepo.FindByPhone(ctx, phone)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return false, nil
		}
		return false, err
	}

	record, err := s.codeRepo.FindByAccount(ctx, account.ID)
	if err != nil {
		if err == domain.ErrCodeNotFound {
			return false, nil
		}
		return false, err
	}

	if record.Code != code {
		s.logVerifyFailure(account, "code mismatch")
		return false, nil
	}

	if record.Consumed {
		s.logVerifyFailure(account, "code already consumed")
		return false, nil
	}

	if record.Expired() {
		// Lazy cleanup: the stale record is removed at the moment of use.
		if err := s.codeRepo.Delete(ctx, account.ID); err != nil {
			return false, fmt.Errorf("failed to delete expired code: %w", err)
		}
		s.logVerifyFailure(account, "code expired")
		return false, nil
	}

	record.Consumed = true
	if err := s.codeRepo.Save(ctx, record); err != nil {
		return false, fmt.Errorf("failed to persist consumed code: %w", err)
	}

	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.CodeVerifiedEvent,
		AccountID: account.ID,
		Phone:     phone,
		Success:   true,
	})

	return true, nil
}

// Resend implements domain.OTPService
func (s *OTPServiceImpl) Resend(ctx context.Context, phone string) error {
	account, err := s.accountRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}

	_, err = s.Issue(ctx, account)
	return err
}

// Delete implements domain.OTPService
func (s *OTPServiceImpl) Delete(ctx context.Context, accountID uint) error {
	return s.codeRepo.Delete(ctx, accountID)
}

func (s *OTPServiceImpl) logVerifyFailure(account *domain.Account, reason string) {
	s.auditLog.Log(&domain.AuditEvent{
		EventType: domain.CodeVerifyFailedEvent,
		AccountID: account.ID,
		Phone:     account.Phone,
		ErrorMsg:  reason,
	})
}

// generateSecureCode draws a fixed-length digit string from a uniform
// distribution using crypto/rand
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
