package audit

import (
	"log"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// LogAuditLogger implements domain.AuditLogger on the standard logger
type LogAuditLogger struct{}

// NewLogAuditLogger creates a new log-backed audit logger
func NewLogAuditLogger() domain.AuditLogger {
	return &LogAuditLogger{}
}

// Log implements domain.AuditLogger
func (l *LogAuditLogger) Log(event *domain.AuditEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.ErrorMsg != "" {
		log.Printf("%s: account_id=%d email=%s phone=%s client_ip=%s success=%t error=%q timestamp=%s",
			event.EventType, event.AccountID, event.Email, event.Phone, event.ClientIP,
			event.Success, event.ErrorMsg, event.Timestamp.Format(time.RFC3339))
		return
	}
	log.Printf("%s: account_id=%d email=%s phone=%s client_ip=%s success=%t timestamp=%s",
		event.EventType, event.AccountID, event.Email, event.Phone, event.ClientIP,
		event.Success, event.Timestamp.Format(time.RFC3339))
}
