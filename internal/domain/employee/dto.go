package employee

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
)

const MaxAvatarSize = 5 << 20 // 5MB

type CreateEmployeeRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	CNICNo   *string `json:"cnic_no,omitempty"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

// Normalize trims input and lowercases the username.
func (r *CreateEmployeeRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.Password = strings.TrimSpace(r.Password)
	r.Phone = trimOrNil(r.Phone)
	r.Address = trimOrNil(r.Address)
	r.CNICNo = trimOrNil(r.CNICNo)
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of a-z, 0-9, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	} else if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.CNICNo != nil && !validator.IsValidCNIC(*r.CNICNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnic_no",
			Message: "cnic_no must be 13 digits, e.g. 12345-1234567-1",
		})
	}

	if r.FileHeader != nil {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(ext, []string{".jpg", ".jpeg", ".png", ".webp"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png, webp allowed",
			})
		} else if r.FileHeader.Size > MaxAvatarSize {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "photo size must not exceed 5MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	CNICNo   *string `json:"cnic_no,omitempty"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	if r.Username != nil {
		u := strings.ToLower(strings.TrimSpace(*r.Username))
		r.Username = &u
	}
	if r.Email != nil {
		e := strings.TrimSpace(*r.Email)
		r.Email = &e
	}
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of a-z, 0-9, '.', '_' or '-'",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.CNICNo != nil && *r.CNICNo != "" && !validator.IsValidCNIC(*r.CNICNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "cnic_no",
			Message: "cnic_no must be 13 digits, e.g. 12345-1234567-1",
		})
	}

	if r.Email == nil && r.Username == nil && r.Phone == nil && r.Address == nil && r.CNICNo == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	CNICNo    *string `json:"cnic_no"`
	AvatarURL *string `json:"avatar_url"`
	CreatedAt string  `json:"created_at"`
}

type ListEmployeeResponse struct {
	Total     int                `json:"total"`
	Employees []EmployeeResponse `json:"employees"`
}

// ToResponse maps an employee for the API; avatarURL resolves the stored
// avatar key to a public URL.
func ToResponse(e Employee, avatarURL func(key string) string) EmployeeResponse {
	var url *string
	if e.AvatarPath != nil && avatarURL != nil {
		u := avatarURL(*e.AvatarPath)
		url = &u
	}
	return EmployeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Phone:     e.Phone,
		Address:   e.Address,
		CNICNo:    e.CNICNo,
		AvatarURL: url,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
