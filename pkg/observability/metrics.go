package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the dashboard collectors.
type Metrics struct {
	Events        *prometheus.CounterVec
	EventDuration *prometheus.HistogramVec
	FilterMatches prometheus.Histogram
}

// NewMetrics registers the dashboard collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hadiant_dashboard_events_total",
			Help: "Dashboard telemetry events by name",
		}, []string{"event"}),
		EventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hadiant_dashboard_event_duration_seconds",
			Help:    "Duration of timed dashboard events",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"event"}),
		FilterMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hadiant_tenant_filter_matches",
			Help:    "Number of tenants returned by the tenant filter",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		}),
	}
}

// IncrementEvent counts a single event.
func (m *Metrics) IncrementEvent(event string) {
	m.Events.WithLabelValues(event).Inc()
}

// ObserveDuration records how long an event took.
func (m *Metrics) ObserveDuration(event string, d time.Duration) {
	m.EventDuration.WithLabelValues(event).Observe(d.Seconds())
}

// ObserveMatches records the size of a tenant filter result.
func (m *Metrics) ObserveMatches(n int) {
	m.FilterMatches.Observe(float64(n))
}
