package classifier

import "github.com/born-ml/crossval/internal/frame"

// ZeroR predicts the most frequent training class for every row.
type ZeroR struct {
	class   int
	trained bool
}

// NewZeroR returns an untrained ZeroR.
func NewZeroR() *ZeroR {
	return &ZeroR{}
}

// Train counts target levels. Ties go to the lowest level index.
func (z *ZeroR) Train(train frame.Table, targetName string) error {
	col, levels, err := target(train, targetName)
	if err != nil {
		return err
	}
	counts := make([]float64, levels)
	seen := 0
	for i := 0; i < train.RowCount(); i++ {
		if level, ok := frame.Nominal(train, i, col); ok {
			counts[level]++
			seen++
		}
	}
	if seen == 0 {
		return ErrNoTrainingData
	}
	z.class = argmax(counts)
	z.trained = true
	return nil
}

// Predict returns the majority class for each row.
func (z *ZeroR) Predict(test frame.Table) ([]int, error) {
	if !z.trained {
		return nil, ErrNotTrained
	}
	out := make([]int, test.RowCount())
	for i := range out {
		out[i] = z.class
	}
	return out, nil
}
