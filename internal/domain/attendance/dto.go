package attendance

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/pkg/calendar"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// RECONCILIATION DTOs
// ========================================

// ReconcileRequest replaces every attendance record of Date. Employees
// missing from Attendance are saved as absent.
type ReconcileRequest struct {
	Date       string          `json:"date"`
	Attendance json.RawMessage `json:"attendance"`

	// Set by Validate
	Day      calendar.Date   `json:"-"`
	Presence map[string]bool `json:"-"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if day, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid calendar date in YYYY-MM-DD format",
		})
	} else {
		r.Day = day
	}

	raw := bytes.TrimSpace(r.Attendance)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		errs = append(errs, validator.ValidationError{
			Field:   "attendance",
			Message: "attendance is required",
		})
	case raw[0] != '{':
		errs = append(errs, validator.ValidationError{
			Field:   "attendance",
			Message: "attendance must be an object mapping employee ids to true/false",
		})
	default:
		presence := make(map[string]bool)
		if err := json.Unmarshal(raw, &presence); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance",
				Message: "attendance values must be true or false",
			})
		} else {
			r.Presence = presence
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceCounts struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

type ReconcileResponse struct {
	Date    string           `json:"date"`
	Message string           `json:"message"`
	Counts  AttendanceCounts `json:"counts"`
}

// ========================================
// READ DTOs
// ========================================

type DayPresenceResponse struct {
	Date       string          `json:"date"`
	Attendance map[string]bool `json:"attendance"`
}

type DatesWithDataResponse struct {
	Month string   `json:"month"`
	Dates []string `json:"dates"`
}

// HistoryRecord is an event enriched with its local date, time and status.
type HistoryRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Present   bool      `json:"present"`
	Note      *string   `json:"note"`
	Latitude  *float64  `json:"lat"`
	Longitude *float64  `json:"lng"`
	Date      string    `json:"date"`   // YYYY-MM-DD local
	Time      string    `json:"time"`   // HH:MM:SS local
	Status    string    `json:"status"` // Present | Absent
}

type EmployeeHistoryResponse struct {
	EmployeeID string          `json:"employee_id"`
	Attendance []HistoryRecord `json:"attendance"`
	Total      int             `json:"total"`
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
}

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)
