package split

import "github.com/born-ml/crossval/internal/frame"

// LeaveOneOut produces one split per row: the row alone is the test set and
// all other rows are the training set. Rows keep their input order.
type LeaveOneOut struct{}

// Name returns "loo".
func (LeaveOneOut) Name() string { return "loo" }

// Splits ignores weights and rng.
func (LeaveOneOut) Splits(t frame.Table, weights []float64, _ frame.Rand) ([]Split, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkWeights(t, weights); err != nil {
		return nil, err
	}

	ids := frame.RowIDs(t)
	src := source(t)
	splits := make([]Split, 0, len(ids))
	for i := range ids {
		train := frame.NewMapping(len(ids) - 1)
		for j, id := range ids {
			if j != i {
				train.Append(id)
			}
		}
		test := frame.NewMapping(1)
		test.Append(ids[i])
		splits = append(splits, newSplit(src, train, test))
	}
	return splits, nil
}

// source returns the root behind t.
func source(t frame.Table) frame.Table {
	if v, ok := t.(*frame.MappedFrame); ok {
		return v.Source()
	}
	return t
}
