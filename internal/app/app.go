package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tienLD2005/hotel-booking-auth/internal/config"
	httpx "github.com/tienLD2005/hotel-booking-auth/internal/http"
	"github.com/tienLD2005/hotel-booking-auth/internal/http/handlers"
	"github.com/tienLD2005/hotel-booking-auth/internal/infrastructure/audit"
	"github.com/tienLD2005/hotel-booking-auth/internal/infrastructure/auth"
	"github.com/tienLD2005/hotel-booking-auth/internal/infrastructure/database"
	"github.com/tienLD2005/hotel-booking-auth/internal/infrastructure/notifications"
	"github.com/tienLD2005/hotel-booking-auth/internal/infrastructure/repositories"
	"github.com/tienLD2005/hotel-booking-auth/internal/services"
)

// codeRecordTTL bounds how long a code record can linger in Redis. It must be
// well beyond the verification window so a consumed record survives until the
// set-password step; code expiry itself is checked lazily by the OTP service.
const codeRecordTTL = 24 * time.Hour

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	auditLog := audit.NewLogAuditLogger()

	// Repositories
	accountRepo := repositories.NewAccountRepository(gdb)
	codeRepo := repositories.NewCodeRepository(rdb, codeRecordTTL)
	tokenRepo := repositories.NewRefreshTokenRepository(gdb)

	// Services
	otpSvc := services.NewOTPService(codeRepo, accountRepo, notificationSvc, auditLog, services.OTPConfig{
		Length: cfg.OTPLength,
		TTL:    cfg.OTPTTL,
	})
	registrationSvc := services.NewRegistrationService(accountRepo, codeRepo, otpSvc, passwordSvc, auditLog)
	refreshSvc := services.NewRefreshTokenService(tokenRepo, services.RefreshTokenConfig{
		TTL:            cfg.RefreshTTL,
		RetentionLimit: cfg.RefreshRetentionLimit,
	})
	authSvc := services.NewAuthService(accountRepo, passwordSvc, tokenSvc, refreshSvc, auditLog, cfg.AccessTTL)

	// Handlers and router
	authH := handlers.NewAuthHandlers(registrationSvc, authSvc)
	r := httpx.BuildRouter(authH, tokenSvc)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
