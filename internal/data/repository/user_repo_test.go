package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hire-nest/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userRows = []string{
	"id", "name", "email", "password", "phone_number", "company_name",
	"employee_count", "refresh_token", "role", "email_verified",
	"phone_number_verified", "blocked", "created_at", "updated_at",
}

func sampleUser() *entity.User {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	now := time.Now()
	return &entity.User{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:          "Jane Recruiter",
		Email:         "jane@acme.com",
		PasswordHash:  &hash,
		PhoneNumber:   "081234567890",
		CompanyName:   "Acme Corp",
		EmployeeCount: 42,
		Role:          entity.RoleMember,
	}
}

func addUserRow(rows *pgxmock.Rows, u *entity.User) *pgxmock.Rows {
	return rows.AddRow(
		u.ID, u.Name, u.Email, u.PasswordHash, u.PhoneNumber, u.CompanyName,
		u.EmployeeCount, u.RefreshToken, u.Role, u.EmailVerified,
		u.PhoneNumberVerified, u.Blocked, u.CreatedAt, u.UpdatedAt,
	)
}

func TestUserRepositoryCreate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "unique violation maps to ErrDuplicate",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(&pgconn.PgError{
						Code:           pgerrcode.UniqueViolation,
						ConstraintName: "users_email_key",
					})
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "other database error passes through",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock, zap.NewNop())
			err = repo.Create(context.Background(), sampleUser())

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else if errors.Is(tt.wantErr, ErrDuplicate) {
				assert.ErrorIs(t, err, ErrDuplicate)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	user := sampleUser()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs(user.Email).
			WillReturnRows(addUserRow(pgxmock.NewRows(userRows), user))

		repo := NewUserRepository(mock, zap.NewNop())
		got, err := repo.FindByEmail(context.Background(), user.Email)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Email, got.Email)
		require.NotNil(t, got.PasswordHash)
		assert.Equal(t, *user.PasswordHash, *got.PasswordHash)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows yields nil without error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("ghost@acme.com").
			WillReturnRows(pgxmock.NewRows(userRows))

		repo := NewUserRepository(mock, zap.NewNop())
		got, err := repo.FindByEmail(context.Background(), "ghost@acme.com")
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryFindByID(t *testing.T) {
	user := sampleUser()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(user.ID).
		WillReturnRows(addUserRow(pgxmock.NewRows(userRows), user))

	repo := NewUserRepository(mock, zap.NewNop())
	got, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateRefreshToken(t *testing.T) {
	id := uuid.New()
	token := "refresh-token-value"

	t.Run("set value", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users SET refresh_token = \$2`).
			WithArgs(id, &token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewUserRepository(mock, zap.NewNop())
		require.NoError(t, repo.UpdateRefreshToken(context.Background(), id, &token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear with nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users SET refresh_token = \$2`).
			WithArgs(id, (*string)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewUserRepository(mock, zap.NewNop())
		require.NoError(t, repo.UpdateRefreshToken(context.Background(), id, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row matched", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users SET refresh_token = \$2`).
			WithArgs(id, &token).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewUserRepository(mock, zap.NewNop())
		assert.ErrorIs(t, repo.UpdateRefreshToken(context.Background(), id, &token), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositorySetEmailVerified(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users SET email_verified = true`).
			WithArgs("jane@acme.com").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewUserRepository(mock, zap.NewNop())
		require.NoError(t, repo.SetEmailVerified(context.Background(), "jane@acme.com"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`UPDATE users SET email_verified = true`).
			WithArgs("ghost@acme.com").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewUserRepository(mock, zap.NewNop())
		assert.ErrorIs(t, repo.SetEmailVerified(context.Background(), "ghost@acme.com"), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryDeleteByEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM users WHERE email = \$1`).
			WithArgs("jane@acme.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := NewUserRepository(mock, zap.NewNop())
		require.NoError(t, repo.DeleteByEmail(context.Background(), "jane@acme.com"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM users WHERE email = \$1`).
			WithArgs("ghost@acme.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewUserRepository(mock, zap.NewNop())
		assert.ErrorIs(t, repo.DeleteByEmail(context.Background(), "ghost@acme.com"), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
