package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/user"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	now func() time.Time
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		now:            time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	loginReq.Normalize()
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	var (
		userData user.User
		err      error
	)
	if loginReq.IsEmail() {
		userData, err = a.UserRepository.GetByEmail(ctx, loginReq.Identifier)
	} else {
		userData, err = a.UserRepository.GetByUsername(ctx, strings.ToLower(loginReq.Identifier))
	}
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// Cek password
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsAdmin() {
		slog.Warn("non-admin login rejected", "user_id", userData.ID)
		return auth.TokenResponse{}, user.ErrAdminPrivilegeRequired
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, loginReq.Identifier, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt - a.now().Unix(),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}

// EnsureAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := a.UserRepository.ExistsByRole(ctx, user.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check for admin: %w", err)
	}
	if exists {
		return nil
	}

	email = strings.TrimSpace(email)
	if !validator.IsValidEmail(email) {
		return validator.Single("ADMIN_EMAIL", "must be a valid email address")
	}

	hash, err := a.hashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	username := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        &email,
		Username:     username,
		PasswordHash: &hash,
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("bootstrap admin created", "user_id", created.ID, "username", created.Username)
	return nil
}
