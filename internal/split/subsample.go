package split

import (
	"fmt"
	"math"

	"github.com/born-ml/crossval/internal/frame"
)

// RandomSubsampling draws Repeats independent holdout splits. Each repeat
// shuffles the rows and trains on the first round(TrainFraction*n) of them.
type RandomSubsampling struct {
	Repeats       int
	TrainFraction float64
}

// Name returns "subsample".
func (r RandomSubsampling) Name() string { return "subsample" }

// Splits ignores weights.
func (r RandomSubsampling) Splits(t frame.Table, weights []float64, rng frame.Rand) ([]Split, error) {
	if r.Repeats <= 0 {
		return nil, fmt.Errorf("%w: repeats must be positive, got %d", frame.ErrInvalidArgument, r.Repeats)
	}
	if r.TrainFraction <= 0 || r.TrainFraction >= 1 {
		return nil, fmt.Errorf("%w: train fraction must be in (0, 1), got %v", frame.ErrInvalidArgument, r.TrainFraction)
	}
	if err := checkTable(t); err != nil {
		return nil, err
	}
	if err := checkWeights(t, weights); err != nil {
		return nil, err
	}

	n := t.RowCount()
	nTrain := int(math.Round(r.TrainFraction * float64(n)))
	if nTrain >= n {
		return nil, fmt.Errorf("%w: %d rows leave nothing to test at fraction %v", ErrEmptyTestSet, n, r.TrainFraction)
	}
	nTrain = max(nTrain, 1)

	splits := make([]Split, 0, r.Repeats)
	for i := 0; i < r.Repeats; i++ {
		f := frame.Shuffle(t, rng)
		ids := frame.RowIDs(f)
		splits = append(splits, newSplit(f.Source(),
			frame.MappingOf(ids[:nTrain]),
			frame.MappingOf(ids[nTrain:])))
	}
	return splits, nil
}
