package infrastructure

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherview.app/internal/ports"
)

// PrometheusMetricsCollector implements the MetricsCollector port
type PrometheusMetricsCollector struct {
	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	preferenceOps   *prometheus.CounterVec
	viewActions     *prometheus.CounterVec
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)

// NewPrometheusMetricsCollector registers the collectors with reg. A nil reg
// uses the default registerer.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherview_backend_requests_total",
				Help: "The total number of requests sent to the weather backend",
			},
			[]string{"operation", "outcome"},
		),
		backendLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherview_backend_request_duration_seconds",
				Help:    "Weather backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		preferenceOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherview_preference_operations_total",
				Help: "The total number of preference store operations",
			},
			[]string{"store", "operation", "success"},
		),
		viewActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherview_view_actions_total",
				Help: "The total number of user actions handled by the weather view",
			},
			[]string{"action"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordBackendRequest(operation, outcome string, duration time.Duration) {
	m.backendRequests.WithLabelValues(operation, outcome).Inc()
	m.backendLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordPreferenceOperation(store, operation string, success bool) {
	m.preferenceOps.WithLabelValues(store, operation, strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordViewAction(action string) {
	m.viewActions.WithLabelValues(action).Inc()
}
