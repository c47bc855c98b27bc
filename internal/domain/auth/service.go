package auth

import (
	"context"
)

type AuthService interface {
	// Login accepts admins only; employees have no dashboard access
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	// EnsureAdmin creates the bootstrap admin account when no admin exists yet
	EnsureAdmin(ctx context.Context, email, password string) error
}
