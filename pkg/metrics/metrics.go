package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extraction call count by outcome (success or error code)
	ExtractionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_requests_total",
			Help: "Total number of task extraction calls by outcome",
		},
		[]string{"outcome"},
	)

	// Tasks surviving normalization
	ExtractedTasks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_tasks_total",
			Help: "Total number of tasks returned after normalization",
		},
	)

	// AI gateway round-trip latency (seconds)
	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "extraction_gateway_call_duration_seconds",
			Help:    "AI gateway round-trip duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~100s
		},
		[]string{"status"},
	)
)

// RecordGatewayCall observes one gateway round trip
func RecordGatewayCall(status string, duration time.Duration) {
	GatewayCallDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// IncrementExtraction counts one extraction call outcome
func IncrementExtraction(outcome string) {
	ExtractionRequests.WithLabelValues(outcome).Inc()
}

// AddExtractedTasks counts tasks returned to the caller
func AddExtractedTasks(n int) {
	ExtractedTasks.Add(float64(n))
}
