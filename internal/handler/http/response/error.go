package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/user"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		PayloadTooLarge(w, "Request body too large")
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrClearDayFailed):
		InternalServerError(w, attendance.ErrClearDayFailed.Error())
	case errors.Is(err, attendance.ErrLoadRosterFailed):
		InternalServerError(w, attendance.ErrLoadRosterFailed.Error())
	case errors.Is(err, attendance.ErrSaveDayFailed):
		InternalServerError(w, attendance.ErrSaveDayFailed.Error())
	case errors.Is(err, attendance.ErrFetchFailed):
		InternalServerError(w, attendance.ErrFetchFailed.Error())

	// Report domain errors
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, report.ErrReportGenerationFailed.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
