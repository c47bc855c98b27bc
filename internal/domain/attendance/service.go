package attendance

import (
	"context"
)

// AttendanceService defines the attendance write path and its read endpoints
type AttendanceService interface {
	// Reconcile replaces the records of one day with one record per employee
	Reconcile(ctx context.Context, req ReconcileRequest) (ReconcileResponse, error)

	// GetDayPresence returns employee id -> present for a day
	GetDayPresence(ctx context.Context, date string) (DayPresenceResponse, error)

	// GetDatesWithData lists the local dates of a month that have records.
	// Store failures yield an empty list.
	GetDatesWithData(ctx context.Context, month string) (DatesWithDataResponse, error)

	// GetEmployeeHistory returns all records of one employee, newest first
	GetEmployeeHistory(ctx context.Context, employeeID string) (EmployeeHistoryResponse, error)
}
