package attendance

import (
	"context"
)

// AttendanceRepository is the attendance log store. Rows are only ever
// inserted or deleted, never updated.
type AttendanceRepository interface {
	// QueryEvents returns events matching filter ordered by created_at
	QueryEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// DeleteEvents removes every event whose created_at lies in r and
	// returns the number of rows removed
	DeleteEvents(ctx context.Context, r TimeRange) (int64, error)

	// InsertEvents stores events as one batch
	InsertEvents(ctx context.Context, events []Event) error
}

// Transactor runs fn in a single store transaction. Repository calls made
// with the ctx passed to fn take part in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
