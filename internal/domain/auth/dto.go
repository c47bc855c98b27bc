package auth

import (
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
)

// LoginRequest accepts either an email address or a username as identifier
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

// IsEmail reports whether the identifier should be looked up as an email
func (r *LoginRequest) IsEmail() bool {
	return strings.Contains(r.Identifier, "@")
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier is required",
		})
	} else if len(r.Identifier) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier must not exceed 254 characters",
		})
	} else if r.IsEmail() && !validator.IsValidEmail(r.Identifier) {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier must be a valid email address or a username",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
