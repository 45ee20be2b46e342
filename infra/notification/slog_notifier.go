// Package notification provides the live notification sink: email, SMS and
// activity-log calls are rendered as structured log records. Delivery through
// a real email/SMS gateway would slot in behind the same interface.
package notification

import "log/slog"

// SlogNotifier routes notification side effects to a structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier builds the sink; a nil logger uses the process default.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) SendEmail(recipient, subject, body string) {
	n.logger.Info("email notification",
		"recipient", recipient,
		"subject", subject,
		"body", body,
	)
}

func (n *SlogNotifier) SendSms(phone, body string) {
	n.logger.Info("sms notification",
		"phone", phone,
		"body", body,
	)
}

func (n *SlogNotifier) LogActivity(accountID, message string) {
	n.logger.Info("account activity",
		"account_id", accountID,
		"message", message,
	)
}
