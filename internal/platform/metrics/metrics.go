package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "jyotish_requests_total",
			Help: "Total HTTP requests by route and status code",
		}, []string{"route", "status"}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jyotish_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jyotish_cache_hits_total",
			Help: "Response cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jyotish_cache_misses_total",
			Help: "Response cache misses",
		}),
	}
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route, status string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(route, status).Inc()
	m.RequestLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncrementCacheHit counts a response served from cache.
func (m *Metrics) IncrementCacheHit() { m.CacheHits.Inc() }

// IncrementCacheMiss counts a response that had to be computed.
func (m *Metrics) IncrementCacheMiss() { m.CacheMisses.Inc() }
