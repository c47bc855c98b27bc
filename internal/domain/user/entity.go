package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Dashboard operator, never tracked for attendance
	RoleEmployee Role = "employee" // Roster member
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is an account row. Employees and admins share the users table and
// are told apart by Role.
type User struct {
	ID           string
	Email        *string
	Username     string
	PasswordHash *string
	Role         Role
	Phone        *string
	Address      *string
	CNICNo       *string
	AvatarPath   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user may operate the dashboard
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
