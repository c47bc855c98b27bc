package user

import (
	"context"
)

type UserRepository interface {
	// GetByEmail returns ErrUserNotFound when no row matches
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByUsername returns ErrUserNotFound when no row matches
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByRole(ctx context.Context, role Role) (bool, error)
}
