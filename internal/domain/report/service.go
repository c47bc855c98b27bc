package report

import "context"

// ReportService composes the aggregation and ranking results into the
// dashboard's read models
type ReportService interface {
	// GetInsightsReport returns growth, today's snapshot, trend, active split
	// and weekday pattern
	GetInsightsReport(ctx context.Context) (InsightsReport, error)

	// GetEmployeeStatsReport returns lifetime per-employee statistics with the
	// best and worst performer
	GetEmployeeStatsReport(ctx context.Context) (EmployeeStatsReport, error)
}
