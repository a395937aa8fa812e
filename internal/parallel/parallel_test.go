package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	seen := make([]int32, 1000)
	For(len(seen), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, v := range seen {
		assert.Equal(t, int32(1), v, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var order []int
	For(5, func(i int) { order = append(order, i) }, Config{Enabled: false})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRun(t *testing.T) {
	for _, workers := range []int{1, 3} {
		var counter int64
		err := Run(context.Background(), 20, workers, func(_ context.Context, _ int) error {
			atomic.AddInt64(&counter, 1)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(20), counter, "workers=%d", workers)
	}
}

func TestRun_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")

	var calls []int
	err := Run(context.Background(), 5, 1, func(_ context.Context, i int) error {
		calls = append(calls, i)
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{0, 1, 2}, calls)

	err = Run(context.Background(), 50, 4, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Run(ctx, 3, 1, func(context.Context, int) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = Run(ctx, 3, 2, func(context.Context, int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
