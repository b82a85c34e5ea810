package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sort_duration_seconds",
		Help:    "Wall time of a single sort call",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), //nolint:mnd
	}, []string{"algorithm", "direction"})

	sortComparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_comparisons_total",
		Help: "The total number of element comparisons made by sort calls",
	}, []string{"algorithm", "direction"})

	sortSwaps = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_swaps_total",
		Help: "The total number of element swaps made by sort calls",
	}, []string{"algorithm", "direction"})

	sortRuns = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_runs_total",
		Help: "The total number of sort calls measured",
	}, []string{"algorithm", "direction"})

	verificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_verification_failures_total",
		Help: "The total number of sort results that were not ordered or not a permutation of the input",
	}, []string{"algorithm", "direction"})
)

func observe(m *Measurement) {
	labels := prometheus.Labels{
		"algorithm": m.Algorithm.String(),
		"direction": m.Direction.String(),
	}

	sortDuration.With(labels).Observe(m.Duration.Seconds())
	sortComparisons.With(labels).Add(float64(m.Stats.Comparisons))
	sortSwaps.With(labels).Add(float64(m.Stats.Swaps))
	sortRuns.With(labels).Inc()

	if m.Error != "" {
		verificationFailures.With(labels).Inc()
	}
}
