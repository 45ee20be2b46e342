// Package notification defines the side-effect sink an account reports large
// movements and activity to. All calls are fire-and-forget: the account never
// inspects a result, and an absent sink means the calls are skipped.
package notification

// Notifier receives side-effect calls triggered by account operations.
type Notifier interface {
	// SendEmail delivers an email notification.
	SendEmail(recipient, subject, body string)
	// SendSms delivers a text-message notification.
	SendSms(phone, body string)
	// LogActivity appends a line to the account's activity log.
	LogActivity(accountID, message string)
}
