package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/attendance"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/calendar"
	"github.com/attendance-admin/attendance-backend-go/internal/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	calendar *calendar.Calendar
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	cal *calendar.Calendar,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		calendar:             cal,
	}
}

// loadRosterAndEvents reads the roster and the events matching filter in
// parallel.
func (s *ReportServiceImpl) loadRosterAndEvents(ctx context.Context, filter attendance.EventFilter) ([]employee.Employee, []attendance.Event, error) {
	var (
		roster []employee.Employee
		events []attendance.Event
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Roster (registration dates, profile fields)
	g.Go(func() error {
		var err error
		roster, err = s.EmployeeRepository.ListEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})

	// 2. Attendance events
	g.Go(func() error {
		var err error
		events, err = s.AttendanceRepository.QueryEvents(gCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	return roster, events, nil
}

// GetInsightsReport implements report.ReportService.
func (s *ReportServiceImpl) GetInsightsReport(ctx context.Context) (report.InsightsReport, error) {
	defer metrics.ObserveReport("insights", time.Now())

	window := trendWindow(s.calendar)
	roster, events, err := s.loadRosterAndEvents(ctx, attendance.EventFilter{Range: &window})
	if err != nil {
		slog.Error("insights report failed", "error", err)
		return report.InsightsReport{}, err
	}

	today := s.calendar.Today()
	todayRange := attendance.TimeRange{From: today.Start(s.calendar.Location), To: today.End(s.calendar.Location)}
	todayEvents := make([]attendance.Event, 0)
	for _, ev := range events {
		if todayRange.Contains(ev.CreatedAt) {
			todayEvents = append(todayEvents, ev)
		}
	}

	return report.InsightsReport{
		TotalEmployees:  len(roster),
		EmployeeGrowth:  GrowthSeries(roster, s.calendar),
		TodayAttendance: TodaySnapshot(todayEvents, len(roster)),
		MonthlyTrend:    DailyTrend(events, s.calendar, trendMaxDates),
		EmployeeStatus:  ActivitySplit(events, roster),
		WeeklyPattern:   WeekdayPattern(events, s.calendar),
	}, nil
}

// GetEmployeeStatsReport implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeStatsReport(ctx context.Context) (report.EmployeeStatsReport, error) {
	defer metrics.ObserveReport("employee_stats", time.Now())

	roster, events, err := s.loadRosterAndEvents(ctx, attendance.EventFilter{})
	if err != nil {
		slog.Error("employee stats report failed", "error", err)
		return report.EmployeeStatsReport{}, err
	}

	ranking := Rank(events, roster)

	return report.EmployeeStatsReport{
		HighestPresence:      ranking.MostPresent,
		AverageAttendance:    ranking.AverageRate,
		MostAbsents:          ranking.MostAbsent,
		TotalEmployees:       len(roster),
		TotalActiveEmployees: ranking.ActiveCount,
		EmployeeStats:        ranking.Stats,
	}, nil
}
