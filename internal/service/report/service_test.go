package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/attendance-admin/attendance-backend-go/internal/domain/employee"
	"github.com/attendance-admin/attendance-backend-go/internal/domain/report"
	"github.com/attendance-admin/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInsightsReport(t *testing.T) {
	store := memory.NewStore()
	alice := store.AddEmployee(employee.Employee{Username: "alice", CreatedAt: at(1, 9)})
	bob := store.AddEmployee(employee.Employee{Username: "bob", CreatedAt: at(14, 9)})
	store.AddEmployee(employee.Employee{Username: "carol", CreatedAt: at(15, 9)})

	store.AddEvent(alice.ID, true, at(14, 12))
	store.AddEvent(bob.ID, false, at(14, 12))
	store.AddEvent(alice.ID, true, at(15, 12))
	// outside the 30 day window
	store.AddEvent(bob.ID, true, time.Date(2025, 1, 2, 12, 0, 0, 0, pkt))

	svc := NewReportService(store, store, fixedCalendar())
	rep, err := svc.GetInsightsReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, rep.TotalEmployees)

	require.Len(t, rep.EmployeeGrowth, 7)
	assert.Equal(t, 1, rep.EmployeeGrowth[5].Count)
	assert.Equal(t, 1, rep.EmployeeGrowth[6].Count)

	assert.Equal(t, report.TodaySnapshot{Present: 1, Absent: 0, NotMarked: 2, Total: 3}, rep.TodayAttendance)

	require.Len(t, rep.MonthlyTrend, 2)
	assert.Equal(t, "2025-03-14", rep.MonthlyTrend[0].Date)
	assert.Equal(t, 50, rep.MonthlyTrend[0].Rate)
	assert.Equal(t, 100, rep.MonthlyTrend[1].Rate)

	assert.Equal(t, report.ActivitySplit{Active: 2, Inactive: 1}, rep.EmployeeStatus)

	require.Len(t, rep.WeeklyPattern, 2)
	assert.Equal(t, "Friday", rep.WeeklyPattern[0].Day)
	assert.Equal(t, "Saturday", rep.WeeklyPattern[1].Day)
}

func TestGetInsightsReport_EmptyStore(t *testing.T) {
	svc := NewReportService(memory.NewStore(), memory.NewStore(), fixedCalendar())

	rep, err := svc.GetInsightsReport(context.Background())
	require.NoError(t, err)

	assert.Zero(t, rep.TotalEmployees)
	assert.Len(t, rep.EmployeeGrowth, 7)
	assert.Empty(t, rep.MonthlyTrend)
	assert.Empty(t, rep.WeeklyPattern)
	assert.Zero(t, rep.TodayAttendance.NotMarked)
}

func TestGetEmployeeStatsReport(t *testing.T) {
	store := memory.NewStore()
	alice := store.AddEmployee(employee.Employee{Username: "alice", CreatedAt: at(1, 9)})
	bob := store.AddEmployee(employee.Employee{Username: "bob", CreatedAt: at(2, 9)})
	store.AddEmployee(employee.Employee{Username: "carol", CreatedAt: at(3, 9)})

	for day := 1; day <= 10; day++ {
		store.AddEvent(alice.ID, day <= 7, at(day, 12))
	}
	// lifetime stats include events older than the insights window
	store.AddEvent(bob.ID, false, time.Date(2024, 6, 1, 12, 0, 0, 0, pkt))

	svc := NewReportService(store, store, fixedCalendar())
	rep, err := svc.GetEmployeeStatsReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, rep.TotalEmployees)
	assert.Equal(t, 2, rep.TotalActiveEmployees)
	assert.Equal(t, 35, rep.AverageAttendance) // (70 + 0) / 2
	require.Len(t, rep.EmployeeStats, 3)

	require.NotNil(t, rep.HighestPresence)
	assert.Equal(t, alice.ID, rep.HighestPresence.EmployeeID)
	assert.Equal(t, 70, rep.HighestPresence.PresenceRate)

	require.NotNil(t, rep.MostAbsents)
	assert.Equal(t, alice.ID, rep.MostAbsents.EmployeeID)
	assert.Equal(t, "3 days absent", rep.MostAbsents.DisplayText)
}

func TestReports_StoreFailure(t *testing.T) {
	store := memory.NewStore()
	store.ErrQuery = errors.New("connection refused")
	svc := NewReportService(store, store, fixedCalendar())

	_, err := svc.GetInsightsReport(context.Background())
	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)

	store.ErrQuery = nil
	store.ErrList = errors.New("connection refused")
	_, err = svc.GetEmployeeStatsReport(context.Background())
	assert.ErrorIs(t, err, report.ErrReportGenerationFailed)
}
