package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sortbench_sort_duration_seconds",
		Help:    "Wall-clock duration of one sorter execution on one fixture",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"algorithm"})

	trialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortbench_trials_total",
		Help: "The total number of sorter trials, by verification outcome",
	}, []string{"algorithm", "outcome"})

	comparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sortbench_comparisons_total",
		Help: "The total number of element comparisons performed",
	}, []string{"algorithm"})
)

const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

// observeTrial records one sorter execution into the metrics above.
func observeTrial(algorithm string, elapsed time.Duration, comparisons int64, ok bool) {
	sortDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	comparisonsTotal.WithLabelValues(algorithm).Add(float64(comparisons))

	outcome := outcomeOK
	if !ok {
		outcome = outcomeFailed
	}

	trialsTotal.WithLabelValues(algorithm, outcome).Inc()
}
