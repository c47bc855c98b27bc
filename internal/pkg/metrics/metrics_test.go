package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReconcile(t *testing.T) {
	beforeOK := testutil.ToFloat64(reconcileTotal.WithLabelValues(OutcomeSuccess))
	beforePresent := testutil.ToFloat64(reconciledRecords.WithLabelValues("present"))
	beforeAbsent := testutil.ToFloat64(reconciledRecords.WithLabelValues("absent"))

	ObserveReconcile(OutcomeSuccess, 1, 2)
	ObserveReconcile(OutcomeSaveFailed, 5, 5)

	assert.Equal(t, beforeOK+1, testutil.ToFloat64(reconcileTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, beforePresent+1, testutil.ToFloat64(reconciledRecords.WithLabelValues("present")))
	assert.Equal(t, beforeAbsent+2, testutil.ToFloat64(reconciledRecords.WithLabelValues("absent")))
}

func TestObserveReport(t *testing.T) {
	ObserveReport("insights", time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(reportDuration, "attendance_report_duration_seconds"))
}

func TestIncDatesDegraded(t *testing.T) {
	before := testutil.ToFloat64(datesDegraded)
	IncDatesDegraded()
	assert.Equal(t, before+1, testutil.ToFloat64(datesDegraded))
}
