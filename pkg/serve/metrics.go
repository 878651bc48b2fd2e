package serve

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/angeljsb/reactive/pkg/rdom"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "reactive").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "reactive",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	opsApplied     *prometheus.CounterVec
	activeSessions prometheus.Gauge
	pageViews      *prometheus.CounterVec
}

// Metrics are registered once per process even when several servers run
// in the same binary (tests).
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "events_total",
			Help:        "Total number of component events processed",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "event_duration_seconds",
			Help:        "Event processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),

		opsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "ops_applied_total",
			Help:        "Total number of tree mutations sent to clients",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_sessions",
			Help:        "Number of active WebSocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		pageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "page_views_total",
			Help:        "Total number of page renders",
			ConstLabels: config.ConstLabels,
		}, []string{"page"}),
	}
}

func getMetrics(config MetricsConfig) *metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	return globalMetrics
}

func (m *metrics) recordEvent(page string, d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.eventsTotal.WithLabelValues(page, status).Inc()
	m.eventDuration.WithLabelValues(page).Observe(d.Seconds())
}

func (m *metrics) recordOps(ops []rdom.Op) {
	if m == nil {
		return
	}
	for _, op := range ops {
		m.opsApplied.WithLabelValues(op.Kind.String()).Inc()
	}
}

func (m *metrics) recordPageView(page string) {
	if m == nil {
		return
	}
	m.pageViews.WithLabelValues(page).Inc()
}

func (m *metrics) sessionOpened() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

func (m *metrics) sessionClosed() {
	if m != nil {
		m.activeSessions.Dec()
	}
}
