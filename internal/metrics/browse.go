package metrics

import "github.com/prometheus/client_golang/prometheus"

// Browse Prometheus metrics.
var (
	QueryCacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "query_cache_lookups_total",
			Help:      "Query cache lookups by predicate kind and result",
		},
		[]string{"kind", "result"}, // "hit" / "miss"
	)

	QueryCacheEvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "query_cache_evictions_total",
			Help:      "Query cache entries removed by the admission queue",
		},
		[]string{"kind"},
	)

	QueryCacheEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "query_cache_entries",
			Help:      "Distinct keys held by the query cache",
		},
		[]string{"kind"},
	)

	QueryCacheQueueLength = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "query_cache_queue_length",
			Help:      "Slots used in the query cache admission queue",
		},
		[]string{"kind"},
	)

	BrowseEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "browse_events_total",
			Help:      "Browse events processed by type and outcome",
		},
		[]string{"event", "outcome"},
	)

	RosterFetchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "roster_fetch_requests_total",
			Help:      "Roster endpoint requests by status",
		},
		[]string{"status"},
	)

	RosterFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "roster_fetch_duration_seconds",
			Help:      "Roster endpoint request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	RosterCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "roster_cache_total",
			Help:      "Roster payload cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var browseMetricsRegistered bool

// RegisterBrowseMetrics registers browse Prometheus metrics. Must be called once from main.
func RegisterBrowseMetrics() {
	if browseMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueryCacheLookupsTotal)
	prometheus.MustRegister(QueryCacheEvictionsTotal)
	prometheus.MustRegister(QueryCacheEntries)
	prometheus.MustRegister(QueryCacheQueueLength)
	prometheus.MustRegister(BrowseEventsTotal)
	prometheus.MustRegister(RosterFetchRequestsTotal)
	prometheus.MustRegister(RosterFetchDuration)
	prometheus.MustRegister(RosterCacheTotal)
	browseMetricsRegistered = true
}
