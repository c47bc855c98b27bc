package employee

import "context"

// EmployeeRepository is the roster provider. Admin accounts are never
// returned.
type EmployeeRepository interface {
	// ListEmployees returns the roster ordered by created_at, id
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee, passwordHash string) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	UpdateAvatar(ctx context.Context, id string, avatarPath string) error
	Delete(ctx context.Context, id string) error
}
