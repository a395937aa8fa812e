package eval

import (
	"fmt"

	"github.com/born-ml/crossval/internal/frame"
	"github.com/born-ml/crossval/internal/split"
)

// Score counts predictions matching column target of p.Test. Rows whose
// actual value is missing count as misses. confusion, when non-nil, is
// indexed [actual][predicted] and is incremented in place; pairs outside its
// bounds are skipped.
func Score(p *Prediction, target int, confusion [][]int) (correct int, accuracy float64, err error) {
	n := p.Test.RowCount()
	if n == 0 {
		return 0, 0, split.ErrEmptyTestSet
	}
	for i := 0; i < n; i++ {
		actual, ok := frame.Nominal(p.Test, i, target)
		if !ok {
			continue
		}
		predicted := p.Classes[i]
		if predicted == actual {
			correct++
		}
		if actual < len(confusion) && predicted >= 0 && predicted < len(confusion[actual]) {
			confusion[actual][predicted]++
		}
	}
	return correct, float64(correct) / float64(n), nil
}

// newConfusion allocates a levels×levels matrix.
func newConfusion(levels int) [][]int {
	m := make([][]int, levels)
	for i := range m {
		m[i] = make([]int, levels)
	}
	return m
}

func addConfusion(dst, src [][]int) {
	for i := range src {
		for j := range src[i] {
			dst[i][j] += src[i][j]
		}
	}
}

func targetColumn(t frame.Table, target string) (int, error) {
	if t == nil {
		return -1, fmt.Errorf("%w: nil table", frame.ErrInvalidArgument)
	}
	if t.RowCount() == 0 {
		return -1, frame.ErrEmptyTable
	}
	col, err := frame.ColumnIndex(t, target)
	if err != nil {
		return -1, err
	}
	if t.Schema()[col].Kind != frame.Nominal {
		return -1, fmt.Errorf("%w: target column %q is %s, want nominal",
			frame.ErrInvalidArgument, target, t.Schema()[col].Kind)
	}
	return col, nil
}
