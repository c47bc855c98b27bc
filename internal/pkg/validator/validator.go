package validator

import (
	"regexp"
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Single builds a ValidationErrors holding one field error.
func Single(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUUID accepts any RFC 4122 UUID in canonical form.
func IsValidUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Date validation (YYYY-MM-DD)
func IsValidDate(dateStr string) (calendar.Date, bool) {
	d, err := calendar.ParseDate(dateStr)
	return d, err == nil
}

// Month validation (YYYY-MM)
func IsValidMonth(monthStr string) (calendar.Month, bool) {
	m, err := calendar.ParseMonth(monthStr)
	return m, err == nil
}

// Username validation: 3-50 chars, a-z, 0-9, ., _, -
var usernameRegex = regexp.MustCompile(`^[a-z0-9._-]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// CNIC validation: 13 digits, dashes optional (12345-1234567-1)
var cnicRegex = regexp.MustCompile(`^\d{5}-?\d{7}-?\d$`)

func IsValidCNIC(cnic string) bool {
	return cnicRegex.MatchString(cnic)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
