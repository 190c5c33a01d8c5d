package usecase

import "hire-nest/pkg/mailer"

// Sender is the notification gateway boundary. Delivery failure is always
// recoverable for callers in this package: it is logged and swallowed,
// never allowed to fail an otherwise-valid state transition.
type Sender interface {
	Send(email mailer.Email) error

	// SendBulk delivers a batch over one connection and reports per-message
	// outcomes positionally.
	SendBulk(emails []mailer.Email) []error
}
