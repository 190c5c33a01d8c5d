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

type VerifyHandler struct {
	service usecase.OtpService
	log     *zap.Logger
}

func NewVerifyHandler(service usecase.OtpService, log *zap.Logger) *VerifyHandler {
	return &VerifyHandler{
		service: service,
		log:     log,
	}
}

// SendOtp handles POST /api/v1/verify/send-email-otp
func (h *VerifyHandler) SendOtp(w http.ResponseWriter, r *http.Request) {
	var req request.SendOtpRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	alreadySent, err := h.service.Request(r.Context(), req.Email, req.Name)
	if err != nil {
		h.handleServiceError(w, err, "send OTP")
		return
	}

	if alreadySent {
		utils.ResponseSuccess(w, "OTP already sent, check your email!", nil)
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully", nil)
}

// ResendOtp handles POST /api/v1/verify/resend-email-otp
func (h *VerifyHandler) ResendOtp(w http.ResponseWriter, r *http.Request) {
	var req request.SendOtpRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Resend(r.Context(), req.Email, req.Name); err != nil {
		h.handleServiceError(w, err, "resend OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP resent successfully", nil)
}

// VerifyOtp handles POST /api/v1/verify/verify-email-otp
func (h *VerifyHandler) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOtpRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Verify(r.Context(), req.Email, req.Otp); err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", nil)
}

func (h *VerifyHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrOtpNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrOtpMismatch),
		errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrInvalidEmail):
		h.log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
