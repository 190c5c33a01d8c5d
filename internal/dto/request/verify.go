package request

type SendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// VerifyOtpRequest carries no length tag on the code: its length follows the
// OTP_LENGTH configuration, and the service compares the exact value anyway.
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required"`
}
