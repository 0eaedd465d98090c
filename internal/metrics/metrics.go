package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics. A nil *Registry is valid and
// records nothing, so instrumentation points never need to guard.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Business metrics
	refreshTotal   *prometheus.CounterVec
	snapshotAssets prometheus.Gauge
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),

		refreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coinsight_refresh_total",
				Help: "Total number of market listing refresh attempts",
			},
			[]string{"result"},
		),

		snapshotAssets: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "coinsight_snapshot_assets",
				Help: "Number of assets in the current market snapshot",
			},
		),

		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "coinsight_request_cache_hits_total",
				Help: "Total number of request cache hits",
			},
		),

		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "coinsight_request_cache_misses_total",
				Help: "Total number of request cache misses",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)
	reg.MustRegister(r.refreshTotal)
	reg.MustRegister(r.snapshotAssets)
	reg.MustRegister(r.cacheHits)
	reg.MustRegister(r.cacheMisses)

	return r
}

// Handler returns an HTTP handler serving the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}

// RecordRequest records a completed HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, seconds float64) {
	if r == nil {
		return
	}
	r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// InFlightInc increments the in-flight request gauge.
func (r *Registry) InFlightInc() {
	if r == nil {
		return
	}
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements the in-flight request gauge.
func (r *Registry) InFlightDec() {
	if r == nil {
		return
	}
	r.httpRequestsInFlight.Dec()
}

// RecordRefreshSuccess records a successful listing refresh.
func (r *Registry) RecordRefreshSuccess(assets int) {
	if r == nil {
		return
	}
	r.refreshTotal.WithLabelValues("success").Inc()
	r.snapshotAssets.Set(float64(assets))
}

// RecordRefreshFailure records a failed listing refresh.
func (r *Registry) RecordRefreshFailure() {
	if r == nil {
		return
	}
	r.refreshTotal.WithLabelValues("failure").Inc()
}

// RecordCacheHit records a request cache hit.
func (r *Registry) RecordCacheHit() {
	if r == nil {
		return
	}
	r.cacheHits.Inc()
}

// RecordCacheMiss records a request cache miss.
func (r *Registry) RecordCacheMiss() {
	if r == nil {
		return
	}
	r.cacheMisses.Inc()
}
