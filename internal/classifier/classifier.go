// Package classifier provides simple classifiers for nominal targets that
// satisfy eval.Classifier.
//
// Training keeps a reference to the train view instead of copying rows; a
// trained classifier must not outlive the table its view is built on.
package classifier

import (
	"errors"
	"fmt"

	"github.com/born-ml/crossval/internal/eval"
	"github.com/born-ml/crossval/internal/frame"
)

// Common errors.
var (
	ErrNotTrained     = errors.New("classifier is not trained")
	ErrNoTrainingData = errors.New("no training rows with a known target")
	ErrSchemaMismatch = errors.New("test table schema does not match training schema")
)

// Options holds settings for New.
type Options struct {
	K int // neighbours for "knn"
}

// New returns a factory for the named classifier: "zeror", "knn" or
// "naivebayes".
func New(name string, opts Options) (eval.ClassifierFactory, error) {
	switch name {
	case "zeror":
		return func() eval.Classifier { return NewZeroR() }, nil
	case "knn":
		if opts.K <= 0 {
			return nil, fmt.Errorf("%w: knn needs k > 0, got %d", frame.ErrInvalidArgument, opts.K)
		}
		return func() eval.Classifier { return NewKNN(opts.K) }, nil
	case "naivebayes":
		return func() eval.Classifier { return NewNaiveBayes() }, nil
	default:
		return nil, fmt.Errorf("%w: unknown classifier %q", frame.ErrInvalidArgument, name)
	}
}

// target resolves and checks the target column.
func target(t frame.Table, name string) (col, levels int, err error) {
	col, err = frame.ColumnIndex(t, name)
	if err != nil {
		return -1, 0, err
	}
	f := t.Schema()[col]
	if f.Kind != frame.Nominal || len(f.Levels) == 0 {
		return -1, 0, fmt.Errorf("%w: target %q must be nominal with levels", frame.ErrInvalidArgument, name)
	}
	return col, len(f.Levels), nil
}

func sameSchema(a, b frame.Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Kind != b[i].Kind {
			return false
		}
	}
	return true
}

// argmax returns the index of the largest value, lowest index on ties.
func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
