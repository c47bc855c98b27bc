package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MaxReconcileBodySize bounds the reconcile payload
const MaxReconcileBodySize = 1 << 20 // 1 MiB

type AttendanceHandler interface {
	Reconcile(w http.ResponseWriter, r *http.Request)
	GetDayPresence(w http.ResponseWriter, r *http.Request)
	GetDatesWithData(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Reconcile implements AttendanceHandler.
func (h *attendanceHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReconcileRequest

	r.Body = http.MaxBytesReader(w, r.Body, MaxReconcileBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.HandleError(w, err)
			return
		}
		slog.Warn("Reconcile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Reconcile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// GetDayPresence implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDayPresence(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetDayPresence(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDatesWithData implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDatesWithData(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetDatesWithData(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetEmployeeHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
