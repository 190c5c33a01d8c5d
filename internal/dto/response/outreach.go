package response

type OutreachResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
