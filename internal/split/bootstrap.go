package split

import (
	"fmt"
	"sort"

	"github.com/born-ml/crossval/internal/frame"
)

// Bootstrap draws Repeats training sets of RowCount rows sampled with
// replacement and tests on the out-of-bag rows of each draw. With weights,
// rows are drawn in proportion to their weight; otherwise uniformly.
type Bootstrap struct {
	Repeats int
}

// Name returns "bootstrap".
func (b Bootstrap) Name() string { return "bootstrap" }

// Splits returns ErrEmptyTestSet if a draw covers every row.
func (b Bootstrap) Splits(t frame.Table, weights []float64, rng frame.Rand) ([]Split, error) {
	if b.Repeats <= 0 {
		return nil, fmt.Errorf("%w: repeats must be positive, got %d", frame.ErrInvalidArgument, b.Repeats)
	}
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkWeights(t, weights); err != nil {
		return nil, err
	}

	var cum []float64
	if weights != nil {
		var err error
		if cum, err = cumulative(weights); err != nil {
			return nil, err
		}
	}

	ids := frame.RowIDs(t)
	n := len(ids)
	splits := make([]Split, 0, b.Repeats)
	for r := 0; r < b.Repeats; r++ {
		drawn := make([]bool, n)
		train := frame.NewMapping(n)
		for i := 0; i < n; i++ {
			pos := draw(rng, n, cum)
			drawn[pos] = true
			train.Append(ids[pos])
		}
		test := frame.NewMapping(n / 3)
		for pos, ok := range drawn {
			if !ok {
				test.Append(ids[pos])
			}
		}
		if test.Len() == 0 {
			return nil, fmt.Errorf("%w: bootstrap repeat %d drew every row", ErrEmptyTestSet, r)
		}
		splits = append(splits, newSplit(source(t), train, test))
	}
	return splits, nil
}

func cumulative(weights []float64) ([]float64, error) {
	cum := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v at row %d", frame.ErrInvalidArgument, w, i)
		}
		sum += w
		cum[i] = sum
	}
	if sum == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", frame.ErrInvalidArgument)
	}
	return cum, nil
}

func draw(rng frame.Rand, n int, cum []float64) int {
	if cum == nil {
		return rng.Intn(n)
	}
	target := rng.Float64() * cum[len(cum)-1]
	pos := sort.Search(len(cum), func(i int) bool { return cum[i] > target })
	return min(pos, n-1)
}
