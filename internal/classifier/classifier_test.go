package classifier

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/crossval/internal/eval"
	"github.com/born-ml/crossval/internal/frame"
	"github.com/born-ml/crossval/internal/split"
)

const (
	A = 0
	B = 1
)

var schema = frame.Schema{
	{Name: "x", Kind: frame.Numeric},
	{Name: "color", Kind: frame.Nominal, Levels: []string{"red", "blue"}},
	{Name: "class", Kind: frame.Nominal, Levels: []string{"A", "B"}},
}

// clusters returns rows where A has small x and red, B has large x and blue.
func clusters(t *testing.T) *frame.Dense {
	t.Helper()
	b := frame.NewBuilder(schema)
	for i := 0; i < 6; i++ {
		b.Append(float64(i)*0.1, 0, A)
		b.Append(10+float64(i)*0.1, 1, B)
	}
	b.Append(0.25, frame.Missing, A)
	b.Append(frame.Missing, 1, B)
	return b.Build()
}

func probe(t *testing.T) *frame.Dense {
	t.Helper()
	b := frame.NewBuilder(schema)
	b.Append(0.2, 0, frame.Missing)
	b.Append(10.3, 1, frame.Missing)
	b.Append(frame.Missing, 1, frame.Missing)
	return b.Build()
}

func TestZeroR(t *testing.T) {
	b := frame.NewBuilder(schema)
	b.Append(1, 0, B)
	b.Append(2, 0, A)
	b.Append(3, 0, B)
	b.Append(4, 0, frame.Missing)
	train := b.Build()

	z := NewZeroR()
	_, err := z.Predict(train)
	assert.ErrorIs(t, err, ErrNotTrained)

	require.NoError(t, z.Train(train, "class"))
	got, err := z.Predict(probe(t))
	require.NoError(t, err)
	assert.Equal(t, []int{B, B, B}, got)
}

func TestZeroR_TieAndEmpty(t *testing.T) {
	root := clusters(t)
	tie := frame.NewMappedFrame(root, frame.MappingOf([]int{0, 1}))

	z := NewZeroR()
	require.NoError(t, z.Train(tie, "class"))
	got, err := z.Predict(tie)
	require.NoError(t, err)
	assert.Equal(t, []int{A, A}, got)

	empty := frame.NewMappedFrame(root, frame.NewMapping(0))
	assert.ErrorIs(t, NewZeroR().Train(empty, "class"), ErrNoTrainingData)
	assert.ErrorIs(t, NewZeroR().Train(root, "x"), frame.ErrInvalidArgument)
	assert.ErrorIs(t, NewZeroR().Train(root, "nope"), frame.ErrUnknownColumn)
}

func TestKNN(t *testing.T) {
	for _, cfg := range []struct {
		name string
		par  bool
	}{{"sequential", false}, {"parallel", true}} {
		t.Run(cfg.name, func(t *testing.T) {
			m := NewKNN(3)
			m.Parallel.Enabled = cfg.par
			m.Parallel.MinChunkSize = 1
			require.NoError(t, m.Train(clusters(t), "class"))

			got, err := m.Predict(probe(t))
			require.NoError(t, err)
			assert.Equal(t, []int{A, B, B}, got)
		})
	}
}

func TestKNN_Errors(t *testing.T) {
	m := NewKNN(1)
	_, err := m.Predict(probe(t))
	assert.ErrorIs(t, err, ErrNotTrained)

	assert.ErrorIs(t, NewKNN(0).Train(clusters(t), "class"), frame.ErrInvalidArgument)

	require.NoError(t, m.Train(clusters(t), "class"))
	other, err := frame.NewDense(frame.Schema{{Name: "x"}}, [][]float64{{1}})
	require.NoError(t, err)
	_, err = m.Predict(other)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestNaiveBayes(t *testing.T) {
	nb := NewNaiveBayes()
	_, err := nb.Predict(probe(t))
	assert.ErrorIs(t, err, ErrNotTrained)

	require.NoError(t, nb.Train(clusters(t), "class"))
	got, err := nb.Predict(probe(t))
	require.NoError(t, err)
	assert.Equal(t, []int{A, B, B}, got)
}

func TestNew(t *testing.T) {
	for _, name := range []string{"zeror", "knn", "naivebayes"} {
		t.Run(name, func(t *testing.T) {
			factory, err := New(name, Options{K: 3})
			require.NoError(t, err)
			a, b := factory(), factory()
			assert.NotSame(t, a, b)
		})
	}

	_, err := New("svm", Options{})
	assert.ErrorIs(t, err, frame.ErrInvalidArgument)
	_, err = New("knn", Options{})
	assert.ErrorIs(t, err, frame.ErrInvalidArgument)
}

func TestCrossValidate_SeparableClusters(t *testing.T) {
	root := clusters(t)
	for _, name := range []string{"knn", "naivebayes"} {
		t.Run(name, func(t *testing.T) {
			factory, err := New(name, Options{K: 1})
			require.NoError(t, err)

			ev, err := eval.New(eval.Config{Strategy: split.KFold{Folds: 4}, Factory: factory, Workers: 2})
			require.NoError(t, err)
			res, err := ev.Run(context.Background(), root, "class", rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			assert.InDelta(t, 1.0, res.Mean, 1e-12)
		})
	}
}
