package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler. Accepts either JSON or a
// multipart form with a JSON 'data' field and an optional 'photo' file.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Warn("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}

		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Warn("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("photo")
		if err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = fileHeader
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
