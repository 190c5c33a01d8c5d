package wire

import (
	"hire-nest/internal/adaptor"
	"hire-nest/internal/data/repository"
	"hire-nest/pkg/middleware"
	"hire-nest/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireVerify configures the email OTP routes. All of them require an
// authenticated session: verification proves control of the address on an
// account that already exists.
func wireVerify(
	r chi.Router,
	verifyHandler *adaptor.VerifyHandler,
	repo *repository.Repository,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(issuer, repo.User, log)

	r.Route("/api/v1/verify", func(r chi.Router) {
		r.With(auth).Post("/send-email-otp", verifyHandler.SendOtp)
		r.With(auth).Post("/resend-email-otp", verifyHandler.ResendOtp)
		r.With(auth).Post("/verify-email-otp", verifyHandler.VerifyOtp)
	})
}
