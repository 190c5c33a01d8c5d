package entity

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleHR     UserRole = "hr"
	RoleMember UserRole = "member"
)

// User is the identity record. Email and phone number are globally unique,
// enforced by the database. RefreshToken holds at most one value, overwritten
// on each login and cleared on logout.
type User struct {
	Base
	Name                string   `db:"name"`
	Email               string   `db:"email"`
	PasswordHash        *string  `db:"password"`
	PhoneNumber         string   `db:"phone_number"`
	CompanyName         string   `db:"company_name"`
	EmployeeCount       int      `db:"employee_count"`
	RefreshToken        *string  `db:"refresh_token"`
	Role                UserRole `db:"role"`
	EmailVerified       bool     `db:"email_verified"`
	PhoneNumberVerified bool     `db:"phone_number_verified"`
	Blocked             bool     `db:"blocked"`
}

// Privileged reports whether the role may act on other accounts.
func (r UserRole) Privileged() bool {
	return r == RoleAdmin || r == RoleHR
}
