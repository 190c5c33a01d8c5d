package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"hire-nest/internal/data/entity"
	"hire-nest/internal/data/repository"
	"hire-nest/pkg/mailer"
	"hire-nest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories mirroring the storage contract: unique email and
// phone number on users, one active OTP row per email.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email || u.PhoneNumber == user.PhoneNumber {
			return repository.ErrDuplicate
		}
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) UpdateRefreshToken(_ context.Context, id uuid.UUID, refreshToken *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

func (m *memUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = &passwordHash
	return nil
}

func (m *memUserRepo) SetEmailVerified(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u.EmailVerified = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memUserRepo) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if u.Email == email {
			delete(m.users, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memOtpRepo struct {
	mu   sync.Mutex
	otps map[string]*entity.Otp
}

func newMemOtpRepo() *memOtpRepo {
	return &memOtpRepo{otps: make(map[string]*entity.Otp)}
}

func (m *memOtpRepo) GetOrCreate(_ context.Context, otp *entity.Otp) (*entity.Otp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.otps[otp.Email]; ok && existing.ExpiresAt.After(time.Now()) {
		clone := *existing
		return &clone, nil
	}
	clone := *otp
	m.otps[otp.Email] = &clone
	result := clone
	return &result, nil
}

func (m *memOtpRepo) FindActive(_ context.Context, email string) (*entity.Otp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if otp, ok := m.otps[email]; ok && otp.ExpiresAt.After(time.Now()) {
		clone := *otp
		return &clone, nil
	}
	return nil, nil
}

func (m *memOtpRepo) MarkSent(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if otp, ok := m.otps[email]; ok && otp.ExpiresAt.After(time.Now()) {
		otp.Sent = true
		return nil
	}
	return repository.ErrNotFound
}

func (m *memOtpRepo) DeleteByEmail(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.otps[email]; !ok {
		return repository.ErrNotFound
	}
	delete(m.otps, email)
	return nil
}

func (m *memOtpRepo) DeleteExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var purged int64
	for email, otp := range m.otps {
		if !otp.ExpiresAt.After(time.Now()) {
			delete(m.otps, email)
			purged++
		}
	}
	return purged, nil
}

// fakeSender records every delivery attempt and can be told to fail.
type fakeSender struct {
	mu       sync.Mutex
	sent     []mailer.Email
	failWith error
}

func (f *fakeSender) Send(email mailer.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, email)
	return nil
}

func (f *fakeSender) SendBulk(emails []mailer.Email) []error {
	errs := make([]error, len(emails))
	for i, email := range emails {
		errs[i] = f.Send(email)
	}
	return errs
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeSender) last() mailer.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

func (f *fakeSender) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWith = err
}

var errSMTPDown = errors.New("smtp connection refused")

func testConfig() *utils.Config {
	return &utils.Config{
		Token: utils.TokenConfig{
			AccessSecret:  "access-secret",
			AccessExpiry:  time.Hour,
			RefreshSecret: "refresh-secret",
			RefreshExpiry: 240 * time.Hour,
		},
		OTP: utils.OTPConfig{
			ExpirySeconds: 600,
			Length:        6,
		},
		// MinCost keeps the hashing tests fast
		Bcrypt: utils.BcryptConfig{Cost: 4},
	}
}

func testRepository() (*repository.Repository, *memUserRepo, *memOtpRepo) {
	users := newMemUserRepo()
	otps := newMemOtpRepo()
	return &repository.Repository{User: users, Otp: otps}, users, otps
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
