package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
	"github.com/attendance-admin/attendance-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	fileService file.FileService
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		fileService:        fileService,
	}
}

func (s *EmployeeServiceImpl) toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.ToResponse(e, s.fileService.FileURL)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListEmployees(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		Total:     len(employees),
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, s.toResponse(e))
	}
	return resp, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, validator.Single("id", "id must be a valid UUID")
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Username: req.Username,
		Email:    email,
		Phone:    req.Phone,
		Address:  req.Address,
		CNICNo:   req.CNICNo,
	}, string(hash))
	if err != nil {
		if errors.Is(err, employee.ErrUsernameExists) || errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if req.File != nil && req.FileHeader != nil {
		if key, ok := s.attachAvatar(ctx, created.ID, req); ok {
			created.AvatarPath = &key
		}
	}

	slog.Info("employee created", "employee_id", created.ID, "username", created.Username)
	return s.toResponse(created), nil
}

// attachAvatar uploads the photo and links it to the employee. Failures are
// logged and the employee is kept without an avatar.
func (s *EmployeeServiceImpl) attachAvatar(ctx context.Context, employeeID string, req employee.CreateEmployeeRequest) (string, bool) {
	key, err := s.fileService.UploadAvatar(ctx, employeeID, req.File, req.FileHeader.Filename)
	if err != nil {
		slog.Warn("avatar upload failed, employee saved without photo", "employee_id", employeeID, "error", err)
		return "", false
	}

	if err := s.EmployeeRepository.UpdateAvatar(ctx, employeeID, key); err != nil {
		slog.Warn("failed to link avatar, employee saved without photo", "employee_id", employeeID, "error", err)
		if delErr := s.fileService.DeleteFile(ctx, key); delErr != nil {
			slog.Warn("failed to remove orphaned avatar", "key", key, "error", delErr)
		}
		return "", false
	}

	return key, true
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return validator.Single("id", "id must be a valid UUID")
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	if existing.AvatarPath != nil {
		if err := s.fileService.DeleteFile(ctx, *existing.AvatarPath); err != nil {
			slog.Warn("failed to delete avatar", "employee_id", id, "error", err)
		}
	}

	slog.Info("employee deleted", "employee_id", id)
	return nil
}
