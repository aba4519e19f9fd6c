package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientMetrics tracks outbound backend calls and the readiness indicator.
type ClientMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendUp       prometheus.Gauge
}

func NewClientMetrics(service string) *ClientMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minutes",
			Subsystem: "client",
			Name:      "backend_requests_total",
			Help:      "Total backend requests by operation and outcome.",
		},
		[]string{"service", "operation", "outcome"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "minutes",
			Subsystem: "client",
			Name:      "backend_request_duration_seconds",
			Help:      "Backend request duration in seconds by operation.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
	backendUp := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "minutes",
			Subsystem: "client",
			Name:      "backend_ready",
			Help:      "1 when the backend last reported ready, 0 otherwise.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(requestTotal, requestDuration, backendUp)

	return &ClientMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		backendUp:       backendUp,
	}
}

func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ClientMetrics) ObserveRequest(service, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	m.requestTotal.WithLabelValues(service, operation, outcome).Inc()
	m.requestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func (m *ClientMetrics) SetBackendReady(ready bool) {
	if m == nil {
		return
	}
	if ready {
		m.backendUp.Set(1)
		return
	}
	m.backendUp.Set(0)
}
