package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordForecastLoad(t *testing.T) {
	before := testutil.ToFloat64(ForecastLoadsTotal.WithLabelValues("fallback"))
	RecordForecastLoad("fallback")
	assert.Equal(t, before+1, testutil.ToFloat64(ForecastLoadsTotal.WithLabelValues("fallback")))
}

func TestRecordFetch_CountsErrors(t *testing.T) {
	before := testutil.ToFloat64(UpstreamErrorsTotal)
	RecordFetch(10*time.Millisecond, nil)
	RecordFetch(10*time.Millisecond, errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(UpstreamErrorsTotal))
}

func TestRecordEvaluation(t *testing.T) {
	before := testutil.ToFloat64(AdvisoriesTotal.WithLabelValues("wind", "high"))
	RecordEvaluation(70, "high", []AdvisoryLabel{
		{Category: "wind", Severity: "high"},
		{Category: "wind", Severity: "high"},
	})
	assert.Equal(t, 70.0, testutil.ToFloat64(RiskScore))
	assert.Equal(t, before+2, testutil.ToFloat64(AdvisoriesTotal.WithLabelValues("wind", "high")))
}

func TestAppInfo(t *testing.T) {
	assert.Equal(t, 1.0, testutil.ToFloat64(AppInfo))
	assert.Greater(t, testutil.ToFloat64(AppStartTime), 0.0)
}
