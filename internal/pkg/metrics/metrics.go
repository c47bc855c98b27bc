package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconcile outcomes
const (
	OutcomeSuccess        = "success"
	OutcomeValidation     = "validation_error"
	OutcomeClearFailed    = "clear_failed"
	OutcomeRosterFailed   = "roster_failed"
	OutcomeSaveFailed     = "save_failed"
	OutcomeUnknownFailure = "error"
)

var (
	reconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_reconcile_total",
		Help: "Day reconciliations by outcome",
	}, []string{"outcome"})

	reconciledRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "attendance_reconciled_records_total",
		Help: "Attendance records written by reconciliation, by status",
	}, []string{"status"})

	reportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "attendance_report_duration_seconds",
		Help:    "Report generation latency",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"report"})

	datesDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "attendance_dates_degraded_total",
		Help: "Dates-with-data lookups answered empty because the store failed",
	})
)

func ObserveReconcile(outcome string, present, absent int) {
	reconcileTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		reconciledRecords.WithLabelValues("present").Add(float64(present))
		reconciledRecords.WithLabelValues("absent").Add(float64(absent))
	}
}

func ObserveReport(report string, started time.Time) {
	reportDuration.WithLabelValues(report).Observe(time.Since(started).Seconds())
}

func IncDatesDegraded() {
	datesDegraded.Inc()
}
