package split

import (
	"fmt"

	"github.com/born-ml/crossval/internal/frame"
)

// KFold assigns shuffled rows round-robin to Folds test sets.
//
// When Folds >= RowCount-1 there are too few rows for balanced folds and
// KFold falls back to one test row per fold: fold i tests the row at position
// i of the shuffled order and trains on every row of the input, in its
// original order, except the one at position i. The two sides therefore use
// different orders and may overlap when the shuffle is not the identity.
// This behavior is kept for compatibility; use LeaveOneOut for an exact
// single-row partition.
type KFold struct {
	Folds int
}

// Name returns "kfold".
func (k KFold) Name() string { return "kfold" }

// Splits reshuffles t and returns Folds splits (at most RowCount in the
// single-row fallback).
func (k KFold) Splits(t frame.Table, weights []float64, rng frame.Rand) ([]Split, error) {
	if k.Folds <= 0 {
		return nil, fmt.Errorf("%w: folds must be positive, got %d", frame.ErrInvalidArgument, k.Folds)
	}
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkWeights(t, weights); err != nil {
		return nil, err
	}

	f := frame.Shuffle(t, rng)
	n := f.RowCount()
	if k.Folds >= n-1 {
		return k.singleRow(t, f), nil
	}

	splits := make([]Split, 0, k.Folds)
	for i := 0; i < k.Folds; i++ {
		train := frame.NewMapping(n - n/k.Folds)
		test := frame.NewMapping(n/k.Folds + 1)
		for j := 0; j < n; j++ {
			if j%k.Folds == i {
				test.Append(f.RowID(j))
			} else {
				train.Append(f.RowID(j))
			}
		}
		splits = append(splits, newSplit(f.Source(), train, test))
	}
	return splits, nil
}

func (k KFold) singleRow(t frame.Table, f *frame.MappedFrame) []Split {
	n := f.RowCount()
	orig := frame.RowIDs(t)
	folds := min(k.Folds, n)

	splits := make([]Split, 0, folds)
	for i := 0; i < folds; i++ {
		train := frame.NewMapping(n - 1)
		for j := 0; j < n; j++ {
			if j != i {
				train.Append(orig[j])
			}
		}
		test := frame.NewMapping(1)
		test.Append(f.RowID(i))
		splits = append(splits, newSplit(f.Source(), train, test))
	}
	return splits
}
