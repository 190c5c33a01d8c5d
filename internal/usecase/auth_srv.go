package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hire-nest/internal/data/entity"
	"hire-nest/internal/data/repository"
	"hire-nest/internal/dto/request"
	"hire-nest/internal/dto/response"
	"hire-nest/pkg/mailer"
	"hire-nest/pkg/token"
	"hire-nest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, email, newPassword string) error
	DeleteUser(ctx context.Context, requesterEmail string, requesterRole entity.UserRole, targetEmail string) error
	CheckSession(ctx context.Context, rawAccessToken string) (*response.SessionResponse, error)
}

type authService struct {
	repo   *repository.Repository
	issuer *token.Issuer
	sender Sender
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *token.Issuer,
	sender Sender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		sender: sender,
		config: config,
		log:    log,
	}
}

// Register validates all input fields first, then checks uniqueness, then
// persists. The unique index on email is the real duplicate guard; the
// pre-check only produces a friendlier error for the common case.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Structural validation before any persistence call
	for _, field := range []string{req.Name, req.Email, req.Password, req.PhoneNumber, req.CompanyName} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrMissingFields
		}
	}
	if req.EmployeeCount < 0 {
		return nil, ErrInvalidEmployeeCount
	}

	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	// 2. Uniqueness pre-check
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	// 3. Hash at the mutation site, never store plaintext
	hash, err := utils.HashPassword(req.Password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		PasswordHash:  &hash,
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		CompanyName:   strings.TrimSpace(req.CompanyName),
		EmployeeCount: req.EmployeeCount,
		Role:          entity.RoleMember,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// A concurrent registration may have won the race since the
		// pre-check; the unique index resolves it to one winner.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 4. Best-effort welcome email
	if err := s.sender.Send(mailer.Email{
		To:       email,
		Subject:  "Welcome to Hire Nest!",
		HTMLBody: fmt.Sprintf("Welcome to Hire Nest, %s! 🎉", user.Name),
		TextBody: fmt.Sprintf("Welcome to Hire Nest, %s!", user.Name),
	}); err != nil {
		s.log.Warn("Failed to send welcome email", zap.Error(err), zap.String("email", email))
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email))

	return &response.AuthResponse{
		User:         response.UserToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, ErrMissingCredentials
	}

	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Unknown email and wrong password produce the identical failure
	if user == nil || user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.AuthResponse{
		User:         response.UserToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout clears the stored refresh token, ending silent renewal for every
// device holding the old value.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.User.UpdateRefreshToken(ctx, userID, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Error("Failed to clear refresh token", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", userID.String()))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, email, newPassword string) error {
	formatted := utils.NormalizeEmail(email)
	if !utils.IsValidEmail(formatted) {
		return ErrInvalidEmail
	}

	user, err := s.repo.User.FindByEmail(ctx, formatted)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !utils.IsValidPassword(newPassword) {
		return ErrWeakPassword
	}

	hash, err := utils.HashPassword(newPassword, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("process password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

// DeleteUser removes an account. Allowed for admin/hr roles or for the
// account owner; once authorized the delete is unconditional.
func (s *authService) DeleteUser(ctx context.Context, requesterEmail string, requesterRole entity.UserRole, targetEmail string) error {
	formatted := utils.NormalizeEmail(targetEmail)
	if !utils.IsValidEmail(formatted) {
		return ErrInvalidEmail
	}

	if !requesterRole.Privileged() && utils.NormalizeEmail(requesterEmail) != formatted {
		return ErrForbidden
	}

	user, err := s.repo.User.FindByEmail(ctx, formatted)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.repo.User.DeleteByEmail(ctx, formatted); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("email", formatted))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted",
		zap.String("email", formatted),
		zap.String("requested_by", requesterEmail))
	return nil
}

// CheckSession is a soft probe used by clients to test whether their cookie
// still names a live account. It never fails for a missing or invalid
// session, it just reports unauthenticated.
func (s *authService) CheckSession(ctx context.Context, rawAccessToken string) (*response.SessionResponse, error) {
	unauthenticated := &response.SessionResponse{Authenticated: false}

	if rawAccessToken == "" {
		return unauthenticated, nil
	}

	claims, err := s.issuer.VerifyAccessToken(rawAccessToken)
	if err != nil {
		return unauthenticated, nil
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return unauthenticated, nil
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || user.Blocked {
		return unauthenticated, nil
	}

	userResp := response.UserToResponse(user)
	return &response.SessionResponse{
		Authenticated: true,
		User:          &userResp,
	}, nil
}

// issueTokenPair mints both tokens and persists the refresh token as the
// single active value for the user. Last writer wins under concurrent
// logins.
func (s *authService) issueTokenPair(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := s.issuer.IssueAccessToken(user)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", "", fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := s.issuer.IssueRefreshToken(user)
	if err != nil {
		s.log.Error("Failed to issue refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", "", fmt.Errorf("issue refresh token: %w", err)
	}

	if err := s.repo.User.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		s.log.Error("Failed to store refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}
