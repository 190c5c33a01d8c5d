package adaptor

import (
	"hire-nest/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Verify   *VerifyHandler
	Outreach *OutreachHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Verify:   NewVerifyHandler(service.Otp, log),
		Outreach: NewOutreachHandler(service.Outreach, log),
	}
}
