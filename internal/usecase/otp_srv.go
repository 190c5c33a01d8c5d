package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hire-nest/internal/data/entity"
	"hire-nest/internal/data/repository"
	"hire-nest/pkg/mailer"
	"hire-nest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OtpService interface {
	Request(ctx context.Context, email, name string) (alreadySent bool, err error)
	Resend(ctx context.Context, email, name string) error
	Verify(ctx context.Context, email, code string) error
}

type otpService struct {
	repo   *repository.Repository
	sender Sender
	config *utils.Config
	log    *zap.Logger
}

func NewOtpService(
	repo *repository.Repository,
	sender Sender,
	config *utils.Config,
	log *zap.Logger,
) OtpService {
	return &otpService{
		repo:   repo,
		sender: sender,
		config: config,
		log:    log,
	}
}

// Request delivers a verification code to the email. Calling it again while
// a delivered code is still active is a no-op signalled by alreadySent; the
// code itself is generated once per active record and reused until expiry.
func (s *otpService) Request(ctx context.Context, email, name string) (bool, error) {
	formatted, err := s.validate(email, name)
	if err != nil {
		return false, err
	}

	otp, err := s.getOrCreate(ctx, formatted)
	if err != nil {
		return false, err
	}

	if otp.Sent {
		return true, nil
	}

	s.deliver(ctx, otp, name)
	return false, nil
}

// Resend is the impatient-user path: it re-sends the active code
// unconditionally, regardless of the sent flag. It never regenerates the
// code, so a copy already sitting in the inbox stays valid.
func (s *otpService) Resend(ctx context.Context, email, name string) error {
	formatted, err := s.validate(email, name)
	if err != nil {
		return err
	}

	otp, err := s.getOrCreate(ctx, formatted)
	if err != nil {
		return err
	}

	s.deliver(ctx, otp, name)
	return nil
}

// Verify consumes the active code. Success flips the user's emailVerified
// flag and deletes the record, so each code verifies at most once; a second
// attempt sees not-found, exactly like an expired or never-requested code.
func (s *otpService) Verify(ctx context.Context, email, code string) error {
	if strings.TrimSpace(email) == "" || code == "" {
		return ErrMissingFields
	}

	formatted := utils.NormalizeEmail(email)
	if !utils.IsValidEmail(formatted) {
		return ErrInvalidEmail
	}

	otp, err := s.repo.Otp.FindActive(ctx, formatted)
	if err != nil {
		return fmt.Errorf("find OTP: %w", err)
	}
	if otp == nil {
		return ErrOtpNotFound
	}

	// Exact string equality, no normalization
	if otp.Code != code {
		return ErrOtpMismatch
	}

	if err := s.repo.User.SetEmailVerified(ctx, formatted); err != nil {
		// The account may have been deleted between request and verify. The
		// code stays active so a recreated account can still consume it.
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		s.log.Error("Failed to mark email verified", zap.Error(err), zap.String("email", formatted))
		return fmt.Errorf("mark email verified: %w", err)
	}

	if err := s.repo.Otp.DeleteByEmail(ctx, formatted); err != nil {
		s.log.Error("Failed to delete consumed OTP", zap.Error(err), zap.String("email", formatted))
		return fmt.Errorf("consume OTP: %w", err)
	}

	s.log.Info("Email verified", zap.String("email", formatted))
	return nil
}

func (s *otpService) validate(email, name string) (string, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" {
		return "", ErrMissingFields
	}

	formatted := utils.NormalizeEmail(email)
	if !utils.IsValidEmail(formatted) {
		return "", ErrInvalidEmail
	}

	return formatted, nil
}

func (s *otpService) getOrCreate(ctx context.Context, email string) (*entity.Otp, error) {
	code, err := utils.GenerateOTP(s.config.OTP.Length)
	if err != nil {
		s.log.Error("Failed to generate OTP code", zap.Error(err))
		return nil, fmt.Errorf("generate OTP: %w", err)
	}

	now := time.Now()
	candidate := &entity.Otp{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(time.Duration(s.config.OTP.ExpirySeconds) * time.Second),
	}

	// The upsert keeps an already-active record untouched, so the fresh
	// code above is simply discarded when one exists.
	otp, err := s.repo.Otp.GetOrCreate(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("get or create OTP: %w", err)
	}

	return otp, nil
}

// deliver attempts the email and records confirmed delivery. A gateway
// failure is logged and swallowed; the sent flag stays false so a later
// request retries.
func (s *otpService) deliver(ctx context.Context, otp *entity.Otp, name string) {
	if name == "" {
		name = otp.Email
	}

	err := s.sender.Send(mailer.Email{
		To:      otp.Email,
		Subject: "Your OTP for Hire Nest",
		HTMLBody: fmt.Sprintf("<h1>Hello, %s</h1><p>Your OTP for Hire Nest</p><p>Your OTP is %s</p>",
			name, otp.Code),
		TextBody: fmt.Sprintf("Your OTP for Hire Nest is %s", otp.Code),
	})
	if err != nil {
		s.log.Warn("Failed to send OTP email", zap.Error(err), zap.String("email", otp.Email))
		return
	}

	if err := s.repo.Otp.MarkSent(ctx, otp.Email); err != nil {
		// The record may have expired between send and confirm; the next
		// request starts over with a fresh code.
		s.log.Warn("Failed to mark OTP as sent", zap.Error(err), zap.String("email", otp.Email))
	}
}
