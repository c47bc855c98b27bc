package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/user"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, username, password_hash, role, phone, address, cnic_no, avatar_path, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.Phone,
		&u.Address,
		&u.CNICNo,
		&u.AvatarPath,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = LOWER($1)`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, username, password_hash, role, phone, address, cnic_no, avatar_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Email,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Phone,
		newUser.Address,
		newUser.CNICNo,
		newUser.AvatarPath,
	))
	if err != nil {
		switch uniqueConstraint(err) {
		case "users_email_key":
			return user.User{}, user.ErrUserEmailExists
		case "users_username_key":
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// ExistsByRole implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByRole(ctx context.Context, role user.Role) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, role).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return exists, nil
}
