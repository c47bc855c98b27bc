package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// ListEmployees lists every roster member
	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates an employee account; the photo upload is best effort
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates profile fields of an employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and, by cascade, their attendance
	DeleteEmployee(ctx context.Context, id string) error
}
