package eval

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// FoldResult is the outcome of one fold.
type FoldResult struct {
	Fold       int
	TrainRows  int
	TestRows   int
	Correct    int
	Accuracy   float64
	Duration   time.Duration
	Prediction *Prediction
}

// Result aggregates a cross-validation run.
type Result struct {
	RunID    uuid.UUID
	Strategy string
	Target   string
	Levels   []string // target levels; row/column labels of Confusion
	Folds    []FoldResult

	Mean     float64 // sum of fold accuracies / number of folds
	Variance float64 // population variance of fold accuracies
	StdDev   float64

	// Confusion is indexed [actual][predicted], summed over folds.
	Confusion [][]int
	Duration  time.Duration
}

// aggregate fills Mean, Variance and StdDev from r.Folds.
func (r *Result) aggregate() {
	n := float64(len(r.Folds))
	if n == 0 {
		return
	}
	sum := 0.0
	for _, f := range r.Folds {
		sum += f.Accuracy
	}
	r.Mean = sum / n

	ss := 0.0
	for _, f := range r.Folds {
		d := f.Accuracy - r.Mean
		ss += d * d
	}
	r.Variance = ss / n
	r.StdDev = math.Sqrt(r.Variance)
}

// Accuracies returns the per-fold accuracies in fold order.
func (r *Result) Accuracies() []float64 {
	out := make([]float64, len(r.Folds))
	for i, f := range r.Folds {
		out[i] = f.Accuracy
	}
	return out
}
