package classifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/born-ml/crossval/internal/frame"
	"github.com/born-ml/crossval/internal/parallel"
)

// KNN is a k-nearest-neighbour classifier.
//
// Numeric attributes are scaled to [0, 1] by the training range; nominal
// attributes contribute 0 when equal and 1 otherwise. A missing value on
// either side contributes 1. The K nearest training rows vote; vote ties go
// to the lowest class index and distance ties keep training order.
type KNN struct {
	K        int
	Parallel parallel.Config

	train   frame.Table
	col     int
	levels  int
	lo, hi  []float64
	trained bool
}

// NewKNN returns an untrained KNN with the default parallel config.
func NewKNN(k int) *KNN {
	return &KNN{K: k, Parallel: parallel.DefaultConfig()}
}

// Train keeps a reference to train and records numeric ranges.
func (m *KNN) Train(train frame.Table, targetName string) error {
	if m.K <= 0 {
		return fmt.Errorf("%w: k must be positive, got %d", frame.ErrInvalidArgument, m.K)
	}
	col, levels, err := target(train, targetName)
	if err != nil {
		return err
	}
	if train.RowCount() == 0 {
		return ErrNoTrainingData
	}

	schema := train.Schema()
	m.lo = make([]float64, len(schema))
	m.hi = make([]float64, len(schema))
	for c, f := range schema {
		if c == col || f.Kind != frame.Numeric {
			continue
		}
		m.lo[c], m.hi[c] = math.Inf(1), math.Inf(-1)
		for i := 0; i < train.RowCount(); i++ {
			v := train.Value(i, c)
			if frame.IsMissing(v) {
				continue
			}
			m.lo[c] = math.Min(m.lo[c], v)
			m.hi[c] = math.Max(m.hi[c], v)
		}
	}

	m.train, m.col, m.levels = train, col, levels
	m.trained = true
	return nil
}

// Predict classifies each row of test.
func (m *KNN) Predict(test frame.Table) ([]int, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}
	if !sameSchema(m.train.Schema(), test.Schema()) {
		return nil, ErrSchemaMismatch
	}
	out := make([]int, test.RowCount())
	parallel.For(len(out), func(i int) {
		out[i] = m.predictRow(test, i)
	}, m.Parallel)
	return out, nil
}

func (m *KNN) predictRow(test frame.Table, row int) int {
	type neighbour struct {
		d     float64
		class int
	}

	n := m.train.RowCount()
	nbrs := make([]neighbour, 0, n)
	for j := 0; j < n; j++ {
		class, ok := frame.Nominal(m.train, j, m.col)
		if !ok {
			continue
		}
		nbrs = append(nbrs, neighbour{d: m.distance(test, row, j), class: class})
	}
	sort.SliceStable(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })

	votes := make([]float64, m.levels)
	for _, nb := range nbrs[:min(m.K, len(nbrs))] {
		votes[nb.class]++
	}
	return argmax(votes)
}

func (m *KNN) distance(test frame.Table, row, trainRow int) float64 {
	sum := 0.0
	for c, f := range m.train.Schema() {
		if c == m.col {
			continue
		}
		a, b := test.Value(row, c), m.train.Value(trainRow, c)
		var d float64
		switch {
		case frame.IsMissing(a) || frame.IsMissing(b):
			d = 1
		case f.Kind == frame.Nominal:
			if a != b {
				d = 1
			}
		default:
			if span := m.hi[c] - m.lo[c]; span > 0 {
				d = (a - b) / span
			}
		}
		sum += d * d
	}
	return sum
}
