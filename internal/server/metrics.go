package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hydrocalc",
			Name:      "requests_total",
			Help:      "Requests handled, by operation and HTTP status.",
		}, []string{"operation", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hydrocalc",
			Name:      "request_duration_seconds",
			Help:      "Request handling latency, by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *metrics) observe(operation string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
