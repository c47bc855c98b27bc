package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/calendar"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/metrics"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/validator"
)

const msgNoEmployees = "No employees found; nothing to save"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	transactor attendance.Transactor
	calendar   *calendar.Calendar
}

func NewAttendanceService(
	transactor attendance.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	cal *calendar.Calendar,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		transactor:           transactor,
		calendar:             cal,
	}
}

// Reconcile implements attendance.AttendanceService. The day is cleared and
// rewritten with one record per roster member inside a single transaction,
// so a failure leaves the previous records of the day in place.
func (s *AttendanceServiceImpl) Reconcile(ctx context.Context, req attendance.ReconcileRequest) (attendance.ReconcileResponse, error) {
	if err := req.Validate(); err != nil {
		metrics.ObserveReconcile(metrics.OutcomeValidation, 0, 0)
		return attendance.ReconcileResponse{}, err
	}

	loc := s.calendar.Location
	day := req.Day
	dayRange := attendance.TimeRange{From: day.Start(loc), To: day.End(loc)}
	anchor := day.Anchor(loc)

	var (
		counts  attendance.AttendanceCounts
		cleared int64
		unknown int
	)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		cleared, err = s.AttendanceRepository.DeleteEvents(ctx, dayRange)
		if err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrClearDayFailed, err)
		}

		roster, err := s.EmployeeRepository.ListEmployees(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrLoadRosterFailed, err)
		}

		events := make([]attendance.Event, 0, len(roster))
		seen := make(map[string]struct{}, len(roster))
		for _, emp := range roster {
			present := req.Presence[emp.ID]
			events = append(events, attendance.Event{
				EmployeeID: emp.ID,
				Present:    present,
				CreatedAt:  anchor,
			})
			seen[emp.ID] = struct{}{}

			if present {
				counts.Present++
			} else {
				counts.Absent++
			}
		}
		counts.Total = len(events)

		for id := range req.Presence {
			if _, ok := seen[id]; !ok {
				unknown++
			}
		}

		if len(events) == 0 {
			return nil
		}

		if err := s.AttendanceRepository.InsertEvents(ctx, events); err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrSaveDayFailed, err)
		}
		return nil
	})
	if err != nil {
		metrics.ObserveReconcile(reconcileOutcome(err), 0, 0)
		slog.Error("attendance reconciliation failed", "date", day.String(), "error", err)
		return attendance.ReconcileResponse{}, err
	}

	metrics.ObserveReconcile(metrics.OutcomeSuccess, counts.Present, counts.Absent)
	if unknown > 0 {
		slog.Warn("ignored presence entries for unknown employees", "date", day.String(), "count", unknown)
	}
	slog.Info("attendance reconciled",
		"date", day.String(),
		"replaced", cleared,
		"total", counts.Total,
		"present", counts.Present,
		"absent", counts.Absent,
	)

	message := fmt.Sprintf("Attendance saved for %s", day.String())
	if counts.Total == 0 {
		message = msgNoEmployees
	}

	return attendance.ReconcileResponse{
		Date:    day.String(),
		Message: message,
		Counts:  counts,
	}, nil
}

func reconcileOutcome(err error) string {
	switch {
	case errors.Is(err, attendance.ErrClearDayFailed):
		return metrics.OutcomeClearFailed
	case errors.Is(err, attendance.ErrLoadRosterFailed):
		return metrics.OutcomeRosterFailed
	case errors.Is(err, attendance.ErrSaveDayFailed):
		return metrics.OutcomeSaveFailed
	default:
		return metrics.OutcomeUnknownFailure
	}
}

// GetDayPresence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDayPresence(ctx context.Context, date string) (attendance.DayPresenceResponse, error) {
	day, valid := validator.IsValidDate(date)
	if !valid {
		return attendance.DayPresenceResponse{}, validator.Single("date", "date must be a valid calendar date in YYYY-MM-DD format")
	}

	loc := s.calendar.Location
	events, err := s.AttendanceRepository.QueryEvents(ctx, attendance.EventFilter{
		Range: &attendance.TimeRange{From: day.Start(loc), To: day.End(loc)},
	})
	if err != nil {
		return attendance.DayPresenceResponse{}, fmt.Errorf("%w: %w", attendance.ErrFetchFailed, err)
	}

	presence := make(map[string]bool, len(events))
	for _, e := range events {
		presence[e.EmployeeID] = e.Present
	}

	return attendance.DayPresenceResponse{
		Date:       day.String(),
		Attendance: presence,
	}, nil
}

// GetDatesWithData implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDatesWithData(ctx context.Context, month string) (attendance.DatesWithDataResponse, error) {
	m, valid := validator.IsValidMonth(month)
	if !valid {
		return attendance.DatesWithDataResponse{}, validator.Single("month", "month must be in YYYY-MM format")
	}

	resp := attendance.DatesWithDataResponse{Month: m.String(), Dates: []string{}}

	if m.After(calendar.MonthOf(s.calendar.Today())) {
		return resp, nil
	}

	loc := s.calendar.Location
	events, err := s.AttendanceRepository.QueryEvents(ctx, attendance.EventFilter{
		Range: &attendance.TimeRange{From: m.Start(loc), To: m.End(loc)},
	})
	if err != nil {
		metrics.IncDatesDegraded()
		slog.Warn("failed to load attendance dates, returning none", "month", m.String(), "error", err)
		return resp, nil
	}

	seen := make(map[string]struct{})
	for _, e := range events {
		d := s.calendar.DateOf(e.CreatedAt).String()
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		resp.Dates = append(resp.Dates, d)
	}
	slices.Sort(resp.Dates)

	return resp, nil
}

// GetEmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string) (attendance.EmployeeHistoryResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return attendance.EmployeeHistoryResponse{}, validator.Single("employee_id", "employee_id must be a valid UUID")
	}

	events, err := s.AttendanceRepository.QueryEvents(ctx, attendance.EventFilter{
		EmployeeID:  &employeeID,
		NewestFirst: true,
	})
	if err != nil {
		return attendance.EmployeeHistoryResponse{}, fmt.Errorf("%w: %w", attendance.ErrFetchFailed, err)
	}

	resp := attendance.EmployeeHistoryResponse{
		EmployeeID: employeeID,
		Attendance: make([]attendance.HistoryRecord, 0, len(events)),
		Total:      len(events),
	}

	for _, e := range events {
		status := attendance.StatusAbsent
		if e.Present {
			status = attendance.StatusPresent
			resp.Present++
		} else {
			resp.Absent++
		}

		resp.Attendance = append(resp.Attendance, attendance.HistoryRecord{
			ID:        e.ID,
			CreatedAt: e.CreatedAt,
			Present:   e.Present,
			Note:      e.Note,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
			Date:      s.calendar.DateOf(e.CreatedAt).String(),
			Time:      s.calendar.FormatTime(e.CreatedAt),
			Status:    status,
		})
	}

	return resp, nil
}
