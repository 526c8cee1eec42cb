package pulse

import "github.com/prometheus/client_golang/prometheus"

// Metrics instruments the request path. Attach it with WithMetrics; one
// Metrics value can be shared by several clients talking to the same API.
type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	rateRemaining prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg. The status
// label carries the HTTP status code, or one of "timeout", "network_error",
// "canceled" for requests that never reached the server.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulse_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"endpoint", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pulse_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		rateRemaining: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pulse_ratelimit_remaining",
				Help: "Requests remaining in the current rate-limit window",
			},
		),
	}

	reg.MustRegister(m.requests, m.duration, m.rateRemaining)
	return m
}
