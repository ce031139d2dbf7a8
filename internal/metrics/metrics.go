// Package metrics provides Prometheus metrics for the news front end.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "uknews"

var (
	// UpstreamRequests counts candidate requests by resource and outcome
	// (ok, absent, failed).
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream candidate requests",
		},
		[]string{"resource", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of upstream candidate requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	// FallbackServed counts pages or sections filled from fallback content.
	FallbackServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_served_total",
			Help:      "Total number of times fallback content was served",
		},
		[]string{"resource"},
	)

	ListCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_cache_total",
			Help:      "List cache lookups by result",
		},
		[]string{"result"},
	)

	WeatherCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result",
		},
		[]string{"result"},
	)

	// PageRenders counts rendered pages by page kind and state.
	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Total number of rendered pages",
		},
		[]string{"page", "state"},
	)
)

// RecordUpstream records one candidate attempt.
func RecordUpstream(resource, outcome string, seconds float64) {
	UpstreamRequests.WithLabelValues(resource, outcome).Inc()
	UpstreamDuration.WithLabelValues(resource).Observe(seconds)
}

func RecordFallback(resource string) {
	FallbackServed.WithLabelValues(resource).Inc()
}

func RecordListCache(hit bool) {
	ListCache.WithLabelValues(result(hit)).Inc()
}

func RecordWeatherCache(hit bool) {
	WeatherCache.WithLabelValues(result(hit)).Inc()
}

func RecordPage(page, state string) {
	PageRenders.WithLabelValues(page, state).Inc()
}

func result(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
