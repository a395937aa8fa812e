package eval

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crossval_runs_total",
		Help: "Total number of cross-validation runs",
	}, []string{"strategy", "outcome"})

	foldsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crossval_folds_total",
		Help: "Total number of folds evaluated",
	}, []string{"strategy", "outcome"})

	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crossval_stage_duration_seconds",
		Help:    "Duration of fold train and predict stages",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"stage"})

	foldAccuracy = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "crossval_fold_accuracy",
		Help:    "Accuracy of individual folds",
		Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
	})
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func observeStage(stage Stage, start time.Time) {
	stageDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())
}
