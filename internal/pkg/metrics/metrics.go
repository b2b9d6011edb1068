// Package metrics provides Prometheus metrics for the scheduler.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal tracks schedule mutations by operation and outcome
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scheduler",
			Subsystem: "schedule",
			Name:      "operations_total",
			Help:      "Total number of schedule operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// GenerationDuration tracks how long the assignment engine takes
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scheduler",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Duration of schedule generation in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"strategy"},
	)

	// UnscheduledPairs reports the unscheduled pairs left by the last generation
	UnscheduledPairs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "scheduler",
			Subsystem: "generation",
			Name:      "unscheduled_pairs",
			Help:      "Number of desired meetings the last generation could not place",
		},
	)

	// GenerationJobsInFlight tracks jobs currently held by the generation worker
	GenerationJobsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "scheduler",
			Subsystem: "generation",
			Name:      "jobs_in_flight",
			Help:      "Number of generation jobs currently being processed",
		},
	)
)

// Outcome labels for OperationsTotal.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

func RecordOperation(operation, outcome string) {
	OperationsTotal.WithLabelValues(operation, outcome).Inc()
}

var (
	// HTTPRequestDuration tracks request latency by route template and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scheduler",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
