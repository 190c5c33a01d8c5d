package repository

import (
	"context"
	"errors"
	"fmt"

	"hire-nest/internal/data/entity"
	"hire-nest/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OtpRepository interface {
	GetOrCreate(ctx context.Context, otp *entity.Otp) (*entity.Otp, error)
	FindActive(ctx context.Context, email string) (*entity.Otp, error)
	MarkSent(ctx context.Context, email string) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOtpRepository(db database.PgxIface, log *zap.Logger) OtpRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// GetOrCreate inserts a fresh code for the email or returns the one already
// active. The unique key on email makes this safe under concurrent requests:
// two racing creators converge on a single row. An expired leftover row that
// the sweeper has not removed yet is replaced in the same statement.
func (r *otpRepository) GetOrCreate(ctx context.Context, otp *entity.Otp) (*entity.Otp, error) {
	query := `
		INSERT INTO otps (id, email, code, sent, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			id         = CASE WHEN otps.expires_at > NOW() THEN otps.id ELSE EXCLUDED.id END,
			code       = CASE WHEN otps.expires_at > NOW() THEN otps.code ELSE EXCLUDED.code END,
			sent       = CASE WHEN otps.expires_at > NOW() THEN otps.sent ELSE EXCLUDED.sent END,
			created_at = CASE WHEN otps.expires_at > NOW() THEN otps.created_at ELSE EXCLUDED.created_at END,
			expires_at = CASE WHEN otps.expires_at > NOW() THEN otps.expires_at ELSE EXCLUDED.expires_at END
		RETURNING id, email, code, sent, created_at, expires_at
	`

	var result entity.Otp
	err := r.db.QueryRow(ctx, query,
		otp.ID,
		otp.Email,
		otp.Code,
		otp.Sent,
		otp.CreatedAt,
		otp.ExpiresAt,
	).Scan(
		&result.ID,
		&result.Email,
		&result.Code,
		&result.Sent,
		&result.CreatedAt,
		&result.ExpiresAt,
	)

	if err != nil {
		r.log.Error("Failed to get or create OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return nil, fmt.Errorf("get or create OTP for %s: %w", otp.Email, err)
	}

	return &result, nil
}

// FindActive returns the unexpired record for the email, or nil when there
// is none. Expired rows are invisible here even before the sweeper removes
// them, so callers naturally see "not found" for stale codes.
func (r *otpRepository) FindActive(ctx context.Context, email string) (*entity.Otp, error) {
	query := `
		SELECT id, email, code, sent, created_at, expires_at
		FROM otps
		WHERE email = $1 AND expires_at > NOW()
	`

	var otp entity.Otp
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.ID,
		&otp.Email,
		&otp.Code,
		&otp.Sent,
		&otp.CreatedAt,
		&otp.ExpiresAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find active OTP for %s: %w", email, err)
	}

	return &otp, nil
}

func (r *otpRepository) MarkSent(ctx context.Context, email string) error {
	query := `UPDATE otps SET sent = true WHERE email = $1 AND expires_at > NOW()`

	result, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to mark OTP as sent",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("mark OTP sent for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM otps WHERE email = $1`

	result, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete OTP for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteExpired purges expired rows. Called periodically by the sweeper;
// reads already filter on expires_at, so this only reclaims space and lets
// a new code be issued for an email whose old one lapsed.
func (r *otpRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM otps WHERE expires_at <= NOW()`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to delete expired OTPs", zap.Error(err))
		return 0, fmt.Errorf("delete expired OTPs: %w", err)
	}

	return result.RowsAffected(), nil
}
