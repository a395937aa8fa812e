package split

import (
	"fmt"

	"github.com/born-ml/crossval/internal/frame"
)

// StratifiedKFold is KFold with per-class fold assignment: rows are shuffled,
// grouped by the level of the Target column, and each group is dealt
// round-robin across the folds, continuing where the previous group stopped.
// Fold class proportions then match the whole table to within one row per
// class. Rows with a missing target form their own group.
type StratifiedKFold struct {
	Folds  int
	Target string
}

// Name returns "stratified".
func (s StratifiedKFold) Name() string { return "stratified" }

// Splits requires Folds <= RowCount.
func (s StratifiedKFold) Splits(t frame.Table, weights []float64, rng frame.Rand) ([]Split, error) {
	if s.Folds <= 0 {
		return nil, fmt.Errorf("%w: folds must be positive, got %d", frame.ErrInvalidArgument, s.Folds)
	}
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkWeights(t, weights); err != nil {
		return nil, err
	}
	if s.Folds > t.RowCount() {
		return nil, fmt.Errorf("%w: %d folds for %d rows", frame.ErrInvalidArgument, s.Folds, t.RowCount())
	}
	col, err := frame.ColumnIndex(t, s.Target)
	if err != nil {
		return nil, err
	}
	if t.Schema()[col].Kind != frame.Nominal {
		return nil, fmt.Errorf("%w: stratification column %q is not nominal", frame.ErrInvalidArgument, s.Target)
	}

	f := frame.Shuffle(t, rng)
	n := f.RowCount()

	// Group shuffled positions by class, missing values last.
	groups := make(map[int][]int)
	order := make([]int, 0)
	for j := 0; j < n; j++ {
		level, ok := frame.Nominal(f, j, col)
		if !ok {
			level = -1
		}
		if _, seen := groups[level]; !seen {
			order = append(order, level)
		}
		groups[level] = append(groups[level], j)
	}

	assign := make([]int, n)
	next := 0
	for _, level := range order {
		for _, j := range groups[level] {
			assign[j] = next
			next = (next + 1) % s.Folds
		}
	}

	splits := make([]Split, 0, s.Folds)
	for i := 0; i < s.Folds; i++ {
		train := frame.NewMapping(n)
		test := frame.NewMapping(n/s.Folds + 1)
		for j := 0; j < n; j++ {
			if assign[j] == i {
				test.Append(f.RowID(j))
			} else {
				train.Append(f.RowID(j))
			}
		}
		splits = append(splits, newSplit(f.Source(), train, test))
	}
	return splits, nil
}
