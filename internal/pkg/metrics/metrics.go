package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// ServerMetrics tracks per-handler request counts and latency.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	// Reuse existing collectors when the process builds more than one app
	// (test suites construct the full wiring repeatedly).
	if err := prometheus.Register(requests); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		requests = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := prometheus.Register(latency); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		latency = are.ExistingCollector.(*prometheus.HistogramVec)
	}

	return &ServerMetrics{
		Requests:  requests,
		LatencyMS: latency,
	}
}
