package middleware

import (
	"net/http"
	"strings"

	"hire-nest/internal/data/repository"
	"hire-nest/pkg/token"
	"hire-nest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessTokenCookie is the cookie carrying the access token; the refresh
// token travels in its own cookie and is only read by the renewal flow.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// ExtractAccessToken reads the access token from the cookie or, failing
// that, from the Authorization header.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// AuthJWT validates the access token and loads the user it names. The
// lookup happens on every authenticated call, no cache, so a blocked or
// deleted account is rejected immediately.
func AuthJWT(issuer *token.Issuer, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ExtractAccessToken(r)
			if raw == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			claims, err := issuer.VerifyAccessToken(raw)
			if err != nil {
				logger.Warn("Invalid access token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid access token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid access token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for auth",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Blocked {
				utils.ResponseUnauthorized(w, "Invalid access token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Email, string(user.Role), user.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
