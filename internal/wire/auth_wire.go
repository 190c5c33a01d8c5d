package wire

import (
	"hire-nest/internal/adaptor"
	"hire-nest/internal/data/repository"
	"hire-nest/pkg/middleware"
	"hire-nest/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	issuer *token.Issuer,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(issuer, repo.User, log)

	r.Route("/api/v1/auth", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/register", handler.Auth.Register)
		r.Post("/login", handler.Auth.Login)

		// Soft session probe: handles its own token so that a stale
		// cookie answers "unauthenticated" instead of 401
		r.Post("/check-auth", handler.Auth.CheckAuth)

		// ==================== PROTECTED ROUTES ====================
		r.With(auth).Post("/logout", handler.Auth.Logout)
		r.With(auth).Post("/delete", handler.Auth.DeleteUser)
		r.With(auth).Post("/change-password", handler.Auth.ChangePassword)
		r.With(auth).Post("/send-emails-to-candidates", handler.Outreach.SendCandidateEmails)
	})
}
