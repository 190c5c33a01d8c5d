package usecase

import "errors"

// Validation failures, user-correctable.
var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrInvalidEmployeeCount = errors.New("invalid employee count")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrWeakPassword         = errors.New("invalid password format")
	ErrMissingCredentials   = errors.New("missing email or password")
)

// Identity and permission failures. ErrInvalidCredentials is deliberately
// the same for an unknown email and a wrong password so login responses
// cannot be used to enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not authorized to perform this action")
)

// Entity absence and conflicts.
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrOtpNotFound  = errors.New("no OTP found for this email, it may have expired")
	ErrOtpMismatch  = errors.New("invalid OTP")
)

// ErrNoEmailsSent is returned when a candidate mailing reached nobody.
var ErrNoEmailsSent = errors.New("failed to send any emails")
