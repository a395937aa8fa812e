package eval

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/crossval/internal/frame"
	"github.com/born-ml/crossval/internal/split"
)

type identityRand struct{}

func (identityRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
func (identityRand) Intn(int) int     { return 0 }
func (identityRand) Float64() float64 { return 0 }

// constant always predicts class and records the rows it saw.
type constant struct {
	class      int
	trainErr   error
	predictErr error
	short      bool

	trainIDs []int
}

func (c *constant) Train(train frame.Table, _ string) error {
	c.trainIDs = frame.RowIDs(train)
	return c.trainErr
}

func (c *constant) Predict(test frame.Table) ([]int, error) {
	if c.predictErr != nil {
		return nil, c.predictErr
	}
	n := test.RowCount()
	if c.short {
		n--
	}
	out := make([]int, n)
	for i := range out {
		out[i] = c.class
	}
	return out, nil
}

const (
	A = 0
	B = 1
)

func scenario(t *testing.T) *frame.Dense {
	t.Helper()
	labels := []float64{A, A, B, B, A, B, A, B, A, B}
	x := make([]float64, len(labels))
	for i := range x {
		x[i] = float64(i)
	}
	d, err := frame.NewDense(frame.Schema{
		{Name: "x", Kind: frame.Numeric},
		{Name: "class", Kind: frame.Nominal, Levels: []string{"A", "B"}},
	}, [][]float64{x, labels})
	require.NoError(t, err)
	return d
}

func TestCrossValidate_Scenario(t *testing.T) {
	root := scenario(t)

	var mu sync.Mutex
	var trained []*constant
	factory := func() Classifier {
		c := &constant{class: A}
		mu.Lock()
		trained = append(trained, c)
		mu.Unlock()
		return c
	}

	res, err := CrossValidate(context.Background(), root, "class", factory, 5, identityRand{})
	require.NoError(t, err)
	require.Len(t, res.Folds, 5)

	assert.Equal(t, []float64{0.5, 1, 0, 0.5, 0.5}, res.Accuracies())
	assert.InDelta(t, 0.5, res.Mean, 1e-12)
	assert.InDelta(t, 0.1, res.Variance, 1e-12)
	assert.Equal(t, [][]int{{5, 0}, {5, 0}}, res.Confusion)
	assert.Equal(t, []string{"A", "B"}, res.Levels)
	assert.Equal(t, "kfold", res.Strategy)
	assert.NotEmpty(t, res.RunID.String())

	for i, f := range res.Folds {
		assert.Equal(t, i, f.Fold)
		assert.Equal(t, 8, f.TrainRows)
		assert.Equal(t, 2, f.TestRows)
		assert.Equal(t, i, f.Prediction.RowID(0))
		assert.Equal(t, i+5, f.Prediction.RowID(1))
	}

	require.Len(t, trained, 5)
	for i, c := range trained {
		assert.Len(t, c.trainIDs, 8)
		assert.NotContains(t, c.trainIDs, i)
		assert.NotContains(t, c.trainIDs, i+5)
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	root := scenario(t)
	factory := func() Classifier { return &constant{class: B} }

	seq, err := New(Config{Strategy: split.KFold{Folds: 3}, Factory: factory})
	require.NoError(t, err)
	par, err := New(Config{Strategy: split.KFold{Folds: 3}, Factory: factory, Workers: 3})
	require.NoError(t, err)

	a, err := seq.Run(context.Background(), root, "class", rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	b, err := par.Run(context.Background(), root, "class", rand.New(rand.NewSource(4)))
	require.NoError(t, err)

	assert.Equal(t, a.Accuracies(), b.Accuracies())
	assert.Equal(t, a.Confusion, b.Confusion)
	assert.InDelta(t, 0.5, a.Mean, 0.2)
}

func TestRun_FailFast(t *testing.T) {
	root := scenario(t)
	boom := errors.New("class B missing from training data")

	tests := []struct {
		name  string
		build func() *constant
		stage Stage
		is    error
	}{
		{"train", func() *constant { return &constant{trainErr: boom} }, StageTrain, ErrClassifierFailure},
		{"predict", func() *constant { return &constant{predictErr: boom} }, StagePredict, ErrClassifierFailure},
		{"length", func() *constant { return &constant{short: true} }, StagePredict, ErrPredictionLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			factory := func() Classifier {
				calls++
				if calls == 3 {
					return tt.build()
				}
				return &constant{}
			}
			ev, err := New(Config{Strategy: split.KFold{Folds: 5}, Factory: factory})
			require.NoError(t, err)

			res, err := ev.Run(context.Background(), root, "class", identityRand{})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, 3, calls, "folds after the failure must not run")

			var fe *FoldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, 2, fe.Fold)
			assert.Equal(t, tt.stage, fe.Stage)
			assert.ErrorIs(t, err, tt.is)
			assert.Contains(t, err.Error(), "fold 2")
		})
	}
}

func TestRun_InvalidInput(t *testing.T) {
	root := scenario(t)
	empty, err := frame.NewDense(root.Schema(), [][]float64{{}, {}})
	require.NoError(t, err)
	factory := func() Classifier { return &constant{} }

	tests := []struct {
		name   string
		folds  int
		table  frame.Table
		target string
	}{
		{"zero folds", 0, root, "class"},
		{"empty table", 3, empty, "class"},
		{"nil table", 3, nil, "class"},
		{"unknown target", 3, root, "label"},
		{"numeric target", 3, root, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CrossValidate(context.Background(), tt.table, tt.target, factory, tt.folds, identityRand{})
			assert.ErrorIs(t, err, frame.ErrInvalidArgument)
		})
	}

	_, err = New(Config{Factory: factory})
	assert.ErrorIs(t, err, frame.ErrInvalidArgument)
	_, err = New(Config{Strategy: split.LeaveOneOut{}})
	assert.ErrorIs(t, err, frame.ErrInvalidArgument)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CrossValidate(ctx, scenario(t), "class", func() Classifier { return &constant{} }, 5, identityRand{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Reporter(t *testing.T) {
	var sb strings.Builder
	ev, err := New(Config{
		Strategy: split.KFold{Folds: 5},
		Factory:  func() Classifier { return &constant{class: A} },
		Reporter: NewTextReporter(&sb),
	})
	require.NoError(t, err)

	_, err = ev.Run(context.Background(), scenario(t), "class", identityRand{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "fold 1/5: accuracy=0.5000 (1/2)", lines[0])
	assert.Equal(t, "fold 2/5: accuracy=1.0000 (2/2)", lines[1])
	assert.Equal(t, "mean accuracy=0.5000 stddev=0.3162 over 5 folds", lines[5])
}

func TestScore_MissingActual(t *testing.T) {
	d, err := frame.NewDense(frame.Schema{
		{Name: "class", Kind: frame.Nominal, Levels: []string{"A", "B"}},
	}, [][]float64{{A, frame.Missing, B, B}})
	require.NoError(t, err)

	test := frame.NewMappedFrame(d, frame.Identity(4))
	pred, err := NewPrediction(test, []int{A, A, B, A})
	require.NoError(t, err)

	confusion := newConfusion(2)
	correct, acc, err := Score(pred, 0, confusion)
	require.NoError(t, err)
	assert.Equal(t, 2, correct)
	assert.InDelta(t, 0.5, acc, 1e-12)
	assert.Equal(t, [][]int{{1, 0}, {1, 1}}, confusion)

	_, _, err = Score(&Prediction{Test: frame.NewMappedFrame(d, frame.NewMapping(0))}, 0, nil)
	assert.ErrorIs(t, err, split.ErrEmptyTestSet)
}

func TestReporterFunc(t *testing.T) {
	var got []string
	r := ReporterFunc(func(s string) { got = append(got, s) })
	r.Line("hello")
	assert.Equal(t, []string{"hello"}, got)
}
