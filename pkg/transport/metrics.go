package transport

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the transport. A nil *Metrics is valid
// and records nothing, so instrumentation stays optional.
type Metrics struct {
	// Completed fetches by outcome ("ok" or the failure category)
	RequestsTotal *prometheus.CounterVec

	// End-to-end fetch latency including retries
	RequestDuration prometheus.Histogram

	// Individual retry attempts
	RetriesTotal prometheus.Counter
}

// NewMetrics creates a Metrics instance registered with the default
// Prometheus registerer. Call it at most once per process.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ietfdata_transport_requests_total",
			Help: "Total Datatracker fetches by outcome",
		}, []string{"outcome"}),

		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ietfdata_transport_request_duration_seconds",
			Help:    "Duration of Datatracker fetches including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		RetriesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ietfdata_transport_retries_total",
			Help: "Total fetch retry attempts",
		}),
	}
}

// ObserveRequest records one completed fetch and its duration.
func (m *Metrics) ObserveRequest(outcome string, d time.Duration) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(outcome).Inc()
		m.RequestDuration.Observe(d.Seconds())
	}
}

// IncrementRetry records one retry attempt.
func (m *Metrics) IncrementRetry() {
	if m != nil {
		m.RetriesTotal.Inc()
	}
}
