package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Searches       *prometheus.CounterVec
	SearchDuration prometheus.Histogram
	CandidatePaths prometheus.Histogram
	Validated      prometheus.Histogram
	PathsTruncated prometheus.Counter
	ErrorsCount    *prometheus.CounterVec
}

// NewMetrics creates route search metrics registered on reg.
// A nil registerer uses the default prometheus registry.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_searches_total",
			Help:      "The total number of route searches by outcome",
		}, []string{"outcome"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_search_duration_seconds",
			Help:      "Time taken to compute route options",
			Buckets:   prometheus.DefBuckets,
		}),
		CandidatePaths: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_candidate_paths",
			Help:      "Airport paths enumerated per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		Validated: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_itineraries_validated",
			Help:      "Chronologically feasible itineraries per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		PathsTruncated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_paths_truncated_total",
			Help:      "Searches whose path enumeration hit the path cap",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
