package usecase

import (
	"hire-nest/internal/data/repository"
	"hire-nest/pkg/token"
	"hire-nest/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Otp      OtpService
	Outreach OutreachService
}

func NewService(
	repo *repository.Repository,
	issuer *token.Issuer,
	sender Sender,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, issuer, sender, config, log),
		Otp:      NewOtpService(repo, sender, config, log),
		Outreach: NewOutreachService(sender, log),
	}
}
