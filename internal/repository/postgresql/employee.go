package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, username, email, phone, address, cnic_no, avatar_path, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.Email,
		&e.Phone,
		&e.Address,
		&e.CNICNo,
		&e.AvatarPath,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func mapEmployeeWriteError(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	switch uniqueConstraint(err) {
	case "users_email_key":
		return employee.ErrEmailExists
	case "users_username_key":
		return employee.ErrUsernameExists
	}
	return fmt.Errorf("failed to %s employee: %w", action, err)
}

// ListEmployees implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM users WHERE role = 'employee' ORDER BY created_at, id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM users WHERE id = $1 AND role = 'employee'`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee, passwordHash string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, email, password_hash, role, phone, address, cnic_no)
		VALUES ($1, $2, $3, 'employee', $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Username,
		newEmployee.Email,
		passwordHash,
		newEmployee.Phone,
		newEmployee.Address,
		newEmployee.CNICNo,
	))
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err, "create")
	}

	return created, nil
}

// Update implements employee.EmployeeRepository. Empty strings clear
// optional columns.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var (
		sets []string
		args []interface{}
	)
	argIdx := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Username != nil {
		set("username", *req.Username)
	}
	if req.Email != nil {
		set("email", nullIfEmpty(*req.Email))
	}
	if req.Phone != nil {
		set("phone", nullIfEmpty(*req.Phone))
	}
	if req.Address != nil {
		set("address", nullIfEmpty(*req.Address))
	}
	if req.CNICNo != nil {
		set("cnic_no", nullIfEmpty(*req.CNICNo))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	query := fmt.Sprintf(`
		UPDATE users SET %s, updated_at = NOW()
		WHERE id = $%d AND role = 'employee'
		RETURNING %s`, strings.Join(sets, ", "), argIdx, employeeColumns)
	args = append(args, req.ID)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err, "update")
	}

	return updated, nil
}

// UpdateAvatar implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateAvatar(ctx context.Context, id string, avatarPath string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET avatar_path = $1, updated_at = NOW() WHERE id = $2 AND role = 'employee'`, avatarPath, id)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Attendance rows go with the
// user through ON DELETE CASCADE.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1 AND role = 'employee'`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
