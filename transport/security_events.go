package transport

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Security event types and outcomes, following NIST SP 800-92 naming.
const (
	EventAuthentication      = "authentication"
	EventProxyAuthentication = "proxy_authentication"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDenied  = "denied"
)

// SecurityEvent is a structured record of an authentication outcome.
type SecurityEvent struct {
	Timestamp     string `json:"timestamp"`
	EventType     string `json:"event_type"`
	Outcome       string `json:"outcome"`
	User          string `json:"user,omitempty"`
	Target        string `json:"target"`
	Scheme        string `json:"scheme,omitempty"`
	Status        int    `json:"status"`
	CorrelationID string `json:"correlation_id"`
}

// securityLogger emits SecurityEvents for one HTTPTransport.
// All events share a correlation ID generated at construction.
type securityLogger struct {
	logger        *slog.Logger
	correlationID string
	now           func() time.Time
}

func newSecurityLogger(logger *slog.Logger) *securityLogger {
	return &securityLogger{
		logger:        logger,
		correlationID: uuid.New().String(),
		now:           time.Now,
	}
}

func (l *securityLogger) log(eventType, outcome, user, scheme, target string, status int) {
	event := SecurityEvent{
		Timestamp:     l.now().UTC().Format(time.RFC3339),
		EventType:     eventType,
		Outcome:       outcome,
		User:          user,
		Target:        target,
		Scheme:        scheme,
		Status:        status,
		CorrelationID: l.correlationID,
	}
	if outcome == OutcomeSuccess {
		l.logger.Info("SecurityEvent", "event", event)
		return
	}
	l.logger.Warn("SecurityEvent", "event", event)
}
