// Package memory holds in-memory repositories used by service and handler
// tests in place of PostgreSQL.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

// Store implements attendance.AttendanceRepository,
// employee.EmployeeRepository and attendance.Transactor. Setting one of the
// Err fields makes the matching operation fail.
type Store struct {
	mu        sync.Mutex
	employees []employee.Employee
	events    []attendance.Event

	ErrQuery  error
	ErrDelete error
	ErrInsert error
	ErrList   error

	// QueryCalls counts QueryEvents invocations
	QueryCalls int
}

func NewStore() *Store {
	return &Store{}
}

// AddEmployee seeds a roster member. Empty ID gets a UUID; zero CreatedAt
// gets the current time.
func (s *Store) AddEmployee(e employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.employees = append(s.employees, e)
	return e
}

// AddEvent seeds an attendance row.
func (s *Store) AddEvent(employeeID string, present bool, at time.Time) attendance.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := attendance.Event{ID: uuid.NewString(), EmployeeID: employeeID, Present: present, CreatedAt: at}
	s.events = append(s.events, e)
	return e
}

// Events returns a copy of every stored row.
func (s *Store) Events() []attendance.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// WithinTransaction restores the previous rows when fn fails.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	employees := slices.Clone(s.employees)
	events := slices.Clone(s.events)
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.employees = employees
		s.events = events
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) QueryEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.QueryCalls++
	if s.ErrQuery != nil {
		return nil, s.ErrQuery
	}

	out := make([]attendance.Event, 0)
	for _, e := range s.events {
		if filter.EmployeeID != nil && e.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Range != nil && !filter.Range.Contains(e.CreatedAt) {
			continue
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b attendance.Event) int {
		if filter.NewestFirst {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func (s *Store) DeleteEvents(ctx context.Context, r attendance.TimeRange) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrDelete != nil {
		return 0, s.ErrDelete
	}

	before := len(s.events)
	s.events = slices.DeleteFunc(s.events, func(e attendance.Event) bool {
		return r.Contains(e.CreatedAt)
	})
	return int64(before - len(s.events)), nil
}

func (s *Store) InsertEvents(ctx context.Context, events []attendance.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrInsert != nil {
		return s.ErrInsert
	}

	for _, e := range events {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		s.events = append(s.events, e)
	}
	return nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrList != nil {
		return nil, s.ErrList
	}
	return slices.Clone(s.employees), nil
}

func (s *Store) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *Store) Create(ctx context.Context, newEmployee employee.Employee, passwordHash string) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.Username == newEmployee.Username {
			return employee.Employee{}, employee.ErrUsernameExists
		}
		if e.Email != nil && newEmployee.Email != nil && *e.Email == *newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	s.employees = append(s.employees, newEmployee)
	return newEmployee, nil
}

func (s *Store) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(req.ID)
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	e := s.employees[i]
	if req.Username != nil {
		e.Username = *req.Username
	}
	if req.Email != nil {
		e.Email = emptyToNil(*req.Email)
	}
	if req.Phone != nil {
		e.Phone = emptyToNil(*req.Phone)
	}
	if req.Address != nil {
		e.Address = emptyToNil(*req.Address)
	}
	if req.CNICNo != nil {
		e.CNICNo = emptyToNil(*req.CNICNo)
	}
	e.UpdatedAt = time.Now()
	s.employees[i] = e
	return e, nil
}

func (s *Store) UpdateAvatar(ctx context.Context, id string, avatarPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return employee.ErrEmployeeNotFound
	}
	s.employees[i].AvatarPath = &avatarPath
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return employee.ErrEmployeeNotFound
	}
	s.employees = slices.Delete(s.employees, i, i+1)
	s.events = slices.DeleteFunc(s.events, func(e attendance.Event) bool {
		return e.EmployeeID == id
	})
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.employees, func(e employee.Employee) bool { return e.ID == id })
}

func emptyToNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

