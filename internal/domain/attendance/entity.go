package attendance

import (
	"time"
)

// Event is one row of the attendance log: the presence flag of one employee
// on the local calendar day that CreatedAt falls on.
type Event struct {
	ID         string
	EmployeeID string
	Present    bool
	Note       *string
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
}

// TimeRange is a half-open interval [From, To).
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies in the range.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// EventFilter narrows QueryEvents. Nil fields do not filter.
type EventFilter struct {
	EmployeeID *string
	Range      *TimeRange
	// NewestFirst orders by created_at descending; default is ascending.
	NewestFirst bool
}
