package entity

import "time"

// Otp is a short-lived email verification code. There is at most one active
// record per email; the unique key on email plus expiry filtering in the
// repository guarantee it. Sent records which code deliveries were confirmed
// by the mail gateway.
type Otp struct {
	BaseSimple
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	Sent      bool      `db:"sent"`
	ExpiresAt time.Time `db:"expires_at"`
}
