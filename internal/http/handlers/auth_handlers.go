package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// AuthHandlers handles identity and session HTTP requests
type AuthHandlers struct {
	registrationSvc domain.RegistrationService
	authSvc         domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(registrationSvc domain.RegistrationService, authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{
		registrationSvc: registrationSvc,
		authSvc:         authSvc,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
	Gender      string `json:"gender"`
}

// VerifyCodeRequest represents a code verification request
type VerifyCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// ResendCodeRequest represents a code resend request
type ResendCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// SetPasswordRequest represents a registration completion request
type SetPasswordRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles account registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	account, err := h.registrationSvc.Register(c.Request.Context(), domain.RegistrationInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
	})
	if err != nil {
		if err == domain.ErrDuplicateIdentity {
			c.JSON(http.StatusConflict, gin.H{"error": "Email or phone number already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message":    "Registered successfully. A verification code has been sent to your phone.",
			"account_id": account.ID,
		},
	})
}

// VerifyCode handles one-time-code verification
func (h *AuthHandlers) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.registrationSvc.SubmitCode(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Code verification failed"})
		return
	}

	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code is incorrect or has expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Code verified. Please set your password.",
		},
	})
}

// ResendCode handles re-issuing a verification code
func (h *AuthHandlers) ResendCode(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registrationSvc.Resend(c.Request.Context(), req.Phone); err != nil {
		if err == domain.ErrAccountNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "A new verification code has been sent to your phone.",
		},
	})
}

// SetPassword handles registration completion
func (h *AuthHandlers) SetPassword(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.registrationSvc.SetPassword(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case domain.ErrCodeNotFound, domain.ErrCodeNotVerified:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please verify your code before setting a password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete registration"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Registration complete. You can log in now.",
		},
	})
}

// Login handles account login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case domain.ErrAccountNotActivated:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not activated. Please complete registration."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token":  result.AccessToken,
			"refresh_token": result.RefreshToken,
			"token_type":    "Bearer",
			"expires_in":    result.ExpiresIn,
			"account": gin.H{
				"id":        result.Account.ID,
				"full_name": result.Account.FullName,
				"email":     result.Account.Email,
			},
		},
	})
}

// Refresh handles access-token renewal
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, err := h.authSvc.RefreshAccessToken(c.Request.Context(), req.RefreshToken, c.ClientIP())
	if err != nil {
		if err == domain.ErrInvalidRefreshToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": accessToken,
			"token_type":   "Bearer",
		},
	})
}

// Me handles getting the current account (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	subject, exists := c.Get("subject")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Subject not found in context"})
		return
	}

	account, err := h.authSvc.CurrentAccount(c.Request.Context(), subject.(string))
	if err != nil {
		if err == domain.ErrAccountNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":            account.ID,
			"full_name":     account.FullName,
			"email":         account.Email,
			"phone":         account.Phone,
			"date_of_birth": account.DateOfBirth.Format("2006-01-02"),
			"gender":        account.Gender,
			"activated":     account.Activated,
			"created_at":    account.CreatedAt,
		},
	})
}

// Logout handles logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	subject, exists := c.Get("subject")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Subject not found in context"})
		return
	}

	account, err := h.authSvc.CurrentAccount(c.Request.Context(), subject.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), account.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}
