package usecase

import (
	"context"
	"fmt"

	"hire-nest/internal/dto/request"
	"hire-nest/internal/dto/response"
	"hire-nest/pkg/mailer"
	"hire-nest/pkg/utils"

	"go.uber.org/zap"
)

type OutreachService interface {
	SendCandidateEmails(ctx context.Context, senderName string, req *request.CandidateEmailRequest) (*response.OutreachResponse, error)
}

type outreachService struct {
	sender Sender
	log    *zap.Logger
}

func NewOutreachService(sender Sender, log *zap.Logger) OutreachService {
	return &outreachService{
		sender: sender,
		log:    log,
	}
}

// SendCandidateEmails delivers the composed message to each candidate
// individually, best-effort per recipient. Partial failure is reported in
// the counts; only reaching nobody is an error.
func (s *outreachService) SendCandidateEmails(ctx context.Context, senderName string, req *request.CandidateEmailRequest) (*response.OutreachResponse, error) {
	if len(req.Candidates) == 0 {
		return nil, ErrMissingFields
	}

	result := &response.OutreachResponse{}

	var messages []mailer.Email
	for _, candidate := range req.Candidates {
		formatted := utils.NormalizeEmail(candidate)
		if !utils.IsValidEmail(formatted) {
			s.log.Warn("Skipping invalid candidate email", zap.String("email", candidate))
			result.Failed++
			continue
		}

		messages = append(messages, mailer.Email{
			To:       formatted,
			Subject:  req.Subject,
			HTMLBody: req.Body,
			TextBody: fmt.Sprintf("%s\n\n- %s", req.Body, senderName),
		})
	}

	// One connection for the whole batch, outcome tracked per recipient
	if len(messages) > 0 {
		for i, err := range s.sender.SendBulk(messages) {
			if err != nil {
				s.log.Warn("Failed to send candidate email",
					zap.Error(err),
					zap.String("email", messages[i].To))
				result.Failed++
				continue
			}
			result.Sent++
		}
	}

	if result.Sent == 0 {
		return nil, ErrNoEmailsSent
	}

	s.log.Info("Candidate emails sent",
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
		zap.String("sender", senderName))

	return result, nil
}
