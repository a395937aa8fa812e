package eval

import (
	"fmt"

	"github.com/born-ml/crossval/internal/frame"
)

// Classifier is the capability the evaluator consumes.
//
// Train fits the model on train using the named nominal target column.
// Predict returns one class index (a level of the target column) per row of
// test, in row order.
type Classifier interface {
	Train(train frame.Table, target string) error
	Predict(test frame.Table) ([]int, error)
}

// ClassifierFactory returns a new, untrained classifier. The evaluator calls
// it once per fold so folds never share classifier state.
type ClassifierFactory func() Classifier

// Prediction pairs a test view with the classes predicted for it.
type Prediction struct {
	Test    *frame.MappedFrame
	Classes []int
}

// NewPrediction checks that classes has one entry per test row.
func NewPrediction(test *frame.MappedFrame, classes []int) (*Prediction, error) {
	if len(classes) != test.RowCount() {
		return nil, fmt.Errorf("%w: got %d predictions for %d rows", ErrPredictionLength, len(classes), test.RowCount())
	}
	return &Prediction{Test: test, Classes: classes}, nil
}

// RowID returns the root row id that prediction i was made for.
func (p *Prediction) RowID(i int) int {
	return p.Test.RowID(i)
}
