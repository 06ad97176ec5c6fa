package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PriceRequestsTotal   prometheus.Counter
	HistoryRequestsTotal prometheus.Counter
	TypesRequestsTotal   prometheus.Counter

	CacheHitsTotal        prometheus.Counter
	CacheMissesTotal      prometheus.Counter
	UpstreamFallbackTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	// Own registry so tests can build independent instances without
	// colliding with the default global one.
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		PriceRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "price_requests_total",
				Help: "Total number of dollar price report requests",
			},
		),

		HistoryRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "history_requests_total",
				Help: "Total number of simulated history report requests",
			},
		),

		TypesRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "types_requests_total",
				Help: "Total number of variant listing requests",
			},
		),

		CacheHitsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "report_cache_hits_total",
				Help: "Total number of report cache hits",
			},
		),

		CacheMissesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "report_cache_misses_total",
				Help: "Total number of report cache misses",
			},
		),

		UpstreamFallbackTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "upstream_fallback_total",
				Help: "Total number of upstream fetches replaced by static fallback data",
			},
		),
	}
}
