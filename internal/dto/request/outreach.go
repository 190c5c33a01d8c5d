package request

type CandidateEmailRequest struct {
	Subject    string   `json:"subject" validate:"required"`
	Body       string   `json:"body" validate:"required"`
	Candidates []string `json:"candidates" validate:"required,min=1,dive,email"`
}
