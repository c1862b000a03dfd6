package lib

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	pairsSampledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathnet_pairs_sampled_total",
			Help: "Total number of node pairs sampled for shortest paths.",
		},
	)
	unreachablePairsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathnet_unreachable_pairs_total",
			Help: "Total number of sampled pairs with no connecting path.",
		},
	)
	pivotsProcessedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathnet_pivots_processed_total",
			Help: "Total number of centrality pivots processed.",
		},
	)
	partitionRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathnet_partition_retries_total",
			Help: "Number of times a worker partition has been retried.",
		},
	)
	degradedRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathnet_degraded_runs_total",
			Help: "Number of analysis runs that completed in a degraded state.",
		},
	)
	analysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pathnet_analysis_duration_seconds",
			Help:    "Duration of complete analysis runs.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(pairsSampledTotal)
	prometheus.MustRegister(unreachablePairsTotal)
	prometheus.MustRegister(pivotsProcessedTotal)
	prometheus.MustRegister(partitionRetries)
	prometheus.MustRegister(degradedRuns)
	prometheus.MustRegister(analysisDuration)
}
