package entities

import "strings"

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleAttendant UserRole = "attendant"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleAttendant
}

// User is an operator of the API. PasswordHash never leaves the service.
type User struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return NewValidationError("user name is required")
	}
	if !u.Role.Valid() {
		return NewValidationError("invalid user role %q", u.Role)
	}
	return nil
}
