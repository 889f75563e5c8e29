package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Forecast acquisition metrics
var (
	// ForecastLoadsTotal counts forecast loads by the source that served them
	ForecastLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hatake_forecast_loads_total",
			Help: "Total number of forecast loads by source (live, cache, fallback)",
		},
		[]string{"source"},
	)

	// ForecastFetchDuration tracks upstream Open-Meteo request latency
	ForecastFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hatake_forecast_fetch_duration_seconds",
			Help:    "Duration of Open-Meteo forecast requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// UpstreamErrorsTotal counts failed upstream attempts, including retried ones
	UpstreamErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hatake_upstream_errors_total",
			Help: "Total number of failed Open-Meteo attempts",
		},
	)

	// CacheOpsTotal counts forecast cache operations
	CacheOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hatake_cache_operations_total",
			Help: "Forecast cache operations by kind and result",
		},
		[]string{"op", "result"},
	)
)

// Evaluation metrics
var (
	// RiskScore is the most recent crop risk score
	RiskScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hatake_risk_score",
			Help: "Most recent crop risk score (0-100)",
		},
	)

	// AdvisoriesTotal counts emitted advisories
	AdvisoriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hatake_advisories_total",
			Help: "Total number of advisories emitted by category and severity",
		},
		[]string{"category", "severity"},
	)

	// EvaluationsTotal counts rule evaluations by risk level
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hatake_evaluations_total",
			Help: "Total number of snapshot evaluations by risk level",
		},
		[]string{"level"},
	)

	// AppInfo provides static information about the application
	AppInfo = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hatake_app_info",
			Help: "Application information (always 1)",
		},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hatake_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	AppInfo.Set(1)
	AppStartTime.SetToCurrentTime()
}

// RecordForecastLoad records which source served a forecast
func RecordForecastLoad(source string) {
	ForecastLoadsTotal.WithLabelValues(source).Inc()
}

// RecordFetch records a single upstream request attempt
func RecordFetch(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
		UpstreamErrorsTotal.Inc()
	}
	ForecastFetchDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordCacheOp records a cache get or set outcome
func RecordCacheOp(op, result string) {
	CacheOpsTotal.WithLabelValues(op, result).Inc()
}

// RecordEvaluation records a risk score, its level, and the emitted advisories
func RecordEvaluation(score int, level string, advisories []AdvisoryLabel) {
	RiskScore.Set(float64(score))
	EvaluationsTotal.WithLabelValues(level).Inc()
	for _, a := range advisories {
		AdvisoriesTotal.WithLabelValues(a.Category, a.Severity).Inc()
	}
}

// AdvisoryLabel is the label pair recorded per advisory.
type AdvisoryLabel struct {
	Category string
	Severity string
}
