// Package metrics exposes Prometheus instrumentation for the analyzer
// service: analysis throughput and latency, persistence failures, and HTTP
// traffic by route.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "skillbridge"
	subsystem = "resume_analyzer"
)

// Metrics holds the service's Prometheus collectors, registered on their
// own registry so default Go runtime metrics stay out of the scrape.
type Metrics struct {
	registry *prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	saveFailures     prometheus.Counter
	httpRequests     *prometheus.CounterVec
}

// New creates a Metrics set on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		analysesTotal: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "analyses_total",
			Help:      "Total number of resume analyses by outcome",
		}, []string{"status"}),
		analysisDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "analysis_duration_milliseconds",
			Help:      "Histogram of analysis pipeline latency in milliseconds",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
		saveFailures: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "history_save_failures_total",
			Help:      "Total number of failed history writes",
		}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method, and status code",
		}, []string{"route", "method", "status_code"}),
	}
}

// ObserveAnalysis records one completed pipeline run.
func (m *Metrics) ObserveAnalysis(status string, durationMs float64) {
	m.analysesTotal.WithLabelValues(status).Inc()
	m.analysisDuration.Observe(durationMs)
}

// ObserveSaveFailure records one failed history write.
func (m *Metrics) ObserveSaveFailure() {
	m.saveFailures.Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(route, method, statusCode string) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
}

// Handler returns the scrape endpoint for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
