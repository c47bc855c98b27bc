package employee

import (
	"time"
)

// Employee is a roster member: a user row with role employee.
type Employee struct {
	ID         string
	Username   string
	Email      *string
	Phone      *string
	Address    *string
	CNICNo     *string
	AvatarPath *string // storage key, resolved to a URL in responses
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName falls back to "Unknown" for rows without a username.
func (e Employee) DisplayName() string {
	if e.Username == "" {
		return "Unknown"
	}
	return e.Username
}
