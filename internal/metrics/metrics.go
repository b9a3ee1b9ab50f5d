package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aivault_cache_lookups_total",
			Help: "Response cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	CacheClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aivault_cache_clears_total",
			Help: "Number of times the response cache was cleared by a mutation",
		},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aivault_upstream_requests_total",
			Help: "Requests sent to the platform API by method and status code",
		},
		[]string{"method", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aivault_upstream_request_duration_seconds",
			Help:    "Latency of platform API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	GatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aivault_gateway_requests_total",
			Help: "Requests served by the portal gateway",
		},
		[]string{"method", "route", "status"},
	)
)
