package token

import (
	"errors"
	"fmt"
	"time"

	"hire-nest/internal/data/entity"
	"hire-nest/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, wrong signing method and expiry. Callers never see the
// underlying parse error for untrusted input.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims carries the identity snapshot taken at issue time. The auth
// middleware still reloads the user per request, so a blocked or deleted
// account is rejected immediately regardless of what the token says.
type AccessClaims struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Blocked     bool   `json:"blocked"`
	jwt.RegisteredClaims
}

// RefreshClaims carries the user id only.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// Issuer mints and verifies the access/refresh token pair. The two token
// types are signed with distinct secrets and distinct TTLs.
type Issuer struct {
	config utils.TokenConfig
}

func NewIssuer(config utils.TokenConfig) *Issuer {
	return &Issuer{config: config}
}

func (i *Issuer) IssueAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Blocked:     user.Blocked,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.config.AccessExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(i.config.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

func (i *Issuer) IssueRefreshToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.config.RefreshExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(i.config.RefreshSecret))
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}

	return signed, nil
}

// VerifyAccessToken parses and validates an access token. It returns
// ErrInvalidToken for anything that is not a well-formed, unexpired token
// signed with the access secret.
func (i *Issuer) VerifyAccessToken(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := i.verify(raw, i.config.AccessSecret, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// VerifyRefreshToken parses and validates a refresh token and returns the
// user id it was issued for.
func (i *Issuer) VerifyRefreshToken(raw string) (string, error) {
	claims := &RefreshClaims{}
	if err := i.verify(raw, i.config.RefreshSecret, claims); err != nil {
		return "", err
	}

	return claims.Subject, nil
}

func (i *Issuer) verify(raw, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
