package providers

import (
	"time"

	"countdown/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	ObservePersistenceDuration(duration time.Duration)
	IncSaveFailures()
	SetEventsTotal(count int)
	IncPhotoRequests(op, outcome string)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	persistenceDuration prometheus.Histogram
	saveFailures        prometheus.Counter
	eventsTotal         prometheus.Gauge
	photoRequests       *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncSaveFailures() {
	m.saveFailures.Inc()
}

func (m *MetricsProvider) SetEventsTotal(count int) {
	m.eventsTotal.Set(float64(count))
}

func (m *MetricsProvider) IncPhotoRequests(op, outcome string) {
	m.photoRequests.WithLabelValues(op, outcome).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "countdown_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "countdown_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "countdown_persistence_duration_seconds",
			Help:    "Duration of event document writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		saveFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "countdown_save_failures_total",
			Help: "Total number of failed event document writes",
		}),

		eventsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "countdown_events_total",
			Help: "Number of events currently held by the store",
		}),

		photoRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "countdown_photo_requests_total",
			Help: "Remote photo provider calls by operation and outcome",
		}, []string{"op", "outcome"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncSaveFailures()                                 {}
func (n *noopMetrics) SetEventsTotal(_ int)                             {}
func (n *noopMetrics) IncPhotoRequests(_, _ string)                     {}
