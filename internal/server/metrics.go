// Package server provides the HTTP server implementation for the transform derivation API.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request-level collectors. Derivation collectors (count and duration per
// policy) live in the winograd package next to the Deriver.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wincalc_active_requests",
		Help: "Current number of in-flight HTTP requests",
	})
	totalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wincalc_requests_total",
		Help: "Total number of HTTP requests received",
	})
)

// Metrics exposes the Prometheus registry over HTTP and owns the request
// gauges updated by the middleware chain.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a Metrics backed by the default Prometheus handler.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests records the start of a request.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
	totalRequests.Inc()
}

// DecrementActiveRequests records the end of a request.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// WritePrometheus renders the registry in Prometheus text format.
//
// Parameters:
//   - w: The writer to output metrics to.
//   - r: The original HTTP request.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// handleMetrics serves GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.metrics.WritePrometheus(w, r)
}

// metricsMiddleware brackets each request with the gauge updates.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}
