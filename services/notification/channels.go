package notification

import (
	"github.com/PayRipple/PayRipple-Backend/services/monitoring/logging"
)

// SMSSender delivers a short message to a phone number. Implementations:
// Twilio (primary), AWS SNS (fallback), and a logging no-op for dev.
type SMSSender interface {
	SendSMS(phone, message string) error
}

// LogSMS writes the message to the application log instead of sending it.
// Used when no SMS provider is configured, mirrors the dev OTP flow.
type LogSMS struct {
	Logger *logging.Logger
}

func (l *LogSMS) SendSMS(phone, message string) error {
	l.Logger.WithField("phone", phone).Info("SMS (not sent, no provider configured): ", message)
	return nil
}
