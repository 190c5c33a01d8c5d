package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"hire-nest/internal/dto/request"
	"hire-nest/internal/usecase"
	"hire-nest/pkg/utils"

	"go.uber.org/zap"
)

type OutreachHandler struct {
	service usecase.OutreachService
	log     *zap.Logger
}

func NewOutreachHandler(service usecase.OutreachService, log *zap.Logger) *OutreachHandler {
	return &OutreachHandler{
		service: service,
		log:     log,
	}
}

// SendCandidateEmails handles POST /api/v1/auth/send-emails-to-candidates
func (h *OutreachHandler) SendCandidateEmails(w http.ResponseWriter, r *http.Request) {
	senderName, ok := utils.GetNameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CandidateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.SendCandidateEmails(r.Context(), senderName, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			utils.ResponseBadRequest(w, err.Error(), nil)
		case errors.Is(err, usecase.ErrNoEmailsSent):
			h.log.Error("Candidate mailing reached nobody", zap.Error(err))
			utils.ResponseInternalError(w, err.Error())
		default:
			h.log.Error("Failed to send candidate emails", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Candidate emails sent", resp)
}
