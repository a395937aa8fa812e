package split

import (
	"errors"
	"fmt"

	"github.com/born-ml/crossval/internal/frame"
)

// ErrEmptyTestSet is returned when a sampling strategy leaves no row for testing.
var ErrEmptyTestSet = errors.New("split produced an empty test set")

// Split is one train/test partition.
type Split struct {
	Train *frame.MappedFrame
	Test  *frame.MappedFrame
}

// Strategy produces an ordered sequence of splits.
//
// weights is optional (nil or one entry per row); strategies that do not
// sample by weight ignore it.
type Strategy interface {
	Name() string
	Splits(t frame.Table, weights []float64, rng frame.Rand) ([]Split, error)
}

// newSplit wraps both mappings over src, which must be a root table.
func newSplit(src frame.Table, train, test frame.Mapping) Split {
	return Split{
		Train: frame.NewMappedFrame(src, train),
		Test:  frame.NewMappedFrame(src, test),
	}
}

func checkTable(t frame.Table) error {
	if t == nil {
		return fmt.Errorf("%w: nil table", frame.ErrInvalidArgument)
	}
	if t.RowCount() == 0 {
		return frame.ErrEmptyTable
	}
	return nil
}

func checkWeights(t frame.Table, weights []float64) error {
	if weights != nil && len(weights) != t.RowCount() {
		return fmt.Errorf("%w: %d weights for %d rows", frame.ErrInvalidArgument, len(weights), t.RowCount())
	}
	return nil
}
