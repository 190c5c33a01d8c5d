package response

import (
	"time"

	"hire-nest/internal/data/entity"
)

// UserResponse is the sanitized user projection. The password digest never
// leaves the service layer.
type UserResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	PhoneNumber         string          `json:"phoneNumber"`
	CompanyName         string          `json:"companyName"`
	EmployeeCount       int             `json:"employeeCount"`
	Role                entity.UserRole `json:"role"`
	EmailVerified       bool            `json:"emailVerified"`
	PhoneNumberVerified bool            `json:"phoneNumberVerified"`
	Blocked             bool            `json:"blocked"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// AuthResponse is returned by register and login. The tokens are also set
// as http-only cookies by the handler; the body mirrors them for
// non-browser clients.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                  user.ID.String(),
		Name:                user.Name,
		Email:               user.Email,
		PhoneNumber:         user.PhoneNumber,
		CompanyName:         user.CompanyName,
		EmployeeCount:       user.EmployeeCount,
		Role:                user.Role,
		EmailVerified:       user.EmailVerified,
		PhoneNumberVerified: user.PhoneNumberVerified,
		Blocked:             user.Blocked,
		CreatedAt:           user.CreatedAt,
	}
}
