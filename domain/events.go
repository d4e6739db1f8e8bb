package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Registration events
	AccountRegisteredEvent  AuditEventType = "ACCOUNT_REGISTERED"
	AccountActivatedEvent   AuditEventType = "ACCOUNT_ACTIVATED"
	CodeIssuedEvent         AuditEventType = "OTP_ISSUED"
	CodeVerifiedEvent       AuditEventType = "OTP_VERIFIED"
	CodeVerifyFailedEvent   AuditEventType = "OTP_VERIFY_FAILED"
	CodeDeliveryFailedEvent AuditEventType = "OTP_DELIVERY_FAILED"

	// Session events
	LoginEvent        AuditEventType = "LOGIN"
	LoginFailedEvent  AuditEventType = "LOGIN_FAILED"
	TokenRefreshEvent AuditEventType = "TOKEN_REFRESHED"
	LogoutEvent       AuditEventType = "LOGOUT"
)

// AuditEvent represents a business event that occurred in the identity subsystem
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	AccountID uint           `json:"account_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	ClientIP  string         `json:"client_ip,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Success   bool           `json:"success"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
}

// AuditLogger defines operations for recording audit events
type AuditLogger interface {
	Log(event *AuditEvent)
}
