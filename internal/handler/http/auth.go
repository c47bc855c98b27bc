package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Warn("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// Logout implements AuthHandler. The bearer token is revoked until it expires.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context(), jwtauth.TokenFromHeader(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logout successful", nil)
}
