package repository

import (
	"hire-nest/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User UserRepository
	Otp  OtpRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		Otp:  NewOtpRepository(db, log),
	}
}
