package request

type RegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,min=7,max=15"`
	CompanyName   string `json:"companyName" validate:"required"`
	EmployeeCount int    `json:"employeeCount" validate:"gte=0"`
}

// LoginRequest carries no validator tags on purpose: the service layer
// distinguishes missing credentials from a malformed email so the client
// gets the right failure without a second decode pass.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}
