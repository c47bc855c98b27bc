package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/auth"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/user"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	storeErr := errors.New("connection reset")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", validator.Single("date", "bad"), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("ctx: %w", validator.Single("date", "bad")), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"too large", &http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"not admin", user.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{"employee missing", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email taken", employee.ErrEmailExists, http.StatusConflict, "CONFLICT"},
		{"username taken", employee.ErrUsernameExists, http.StatusConflict, "CONFLICT"},
		{"clear failed", fmt.Errorf("%w: %w", attendance.ErrClearDayFailed, storeErr), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"save failed", fmt.Errorf("%w: %w", attendance.ErrSaveDayFailed, storeErr), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"report failed", fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, storeErr), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"unknown", storeErr, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "connection reset")
		})
	}
}

func TestHandleError_SaveFailureTellsCallerToRetry(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("%w: %w", attendance.ErrSaveDayFailed, errors.New("disk")))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, attendance.ErrSaveDayFailed.Error(), body.Error.Message)
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMessage(rec, "ok", map[string]int{"total": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"ok","data":{"total":3}}`, rec.Body.String())
}

func TestNotConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	NotConfigured(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"NOT_CONFIGURED","message":"server misconfigured"}}`, rec.Body.String())
}
