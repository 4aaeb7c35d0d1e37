// Package metrics exposes Prometheus counters for HTTP traffic and quantity
// processing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Quantity outcomes recorded by QuantityOperation.
const (
	OutcomeParsed   = "parsed"
	OutcomeOpaque   = "opaque"
	OutcomeMismatch = "mismatch"
)

// Collector owns a private registry so several servers can coexist in one
// process.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	quantityOperations  *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		quantityOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quantity_operations_total",
				Help: "Ingredient amounts processed, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// HTTPMiddleware records request counts and latency per route.
func (m *Collector) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// QuantityOperation counts one processed amount. A nil collector is a no-op.
func (m *Collector) QuantityOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.quantityOperations.WithLabelValues(operation, outcome).Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}
