package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrUsernameExists   = errors.New("username already taken")
)
