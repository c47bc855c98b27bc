package middleware

import (
	"net/http"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/response"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired must run after jwtauth.Verifier. It rejects missing, expired,
// non-access and revoked tokens.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
