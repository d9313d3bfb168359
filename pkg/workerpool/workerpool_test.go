package workerpool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSingleWorkerRunsInOrder(t *testing.T) {
	wp := NewWorkerPool(1, 8)
	defer wp.Close()

	var order []int
	results := make([]chan Result, 0, 5)
	for i := 0; i < 5; i++ {
		i := i
		resCh := make(chan Result, 1)
		results = append(results, resCh)
		require.NoError(t, wp.Submit(context.Background(), Task{
			Fn: func() (any, error) {
				order = append(order, i)
				return i * i, nil
			},
			ResultC: resCh,
		}))
	}
	for i, resCh := range results {
		res := <-resCh
		require.NoError(t, res.Err)
		assert.Equal(t, i*i, res.Value)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestResultCarriesError(t *testing.T) {
	wp := NewWorkerPool(2, 1)
	defer wp.Close()

	boom := errors.New("boom")
	resCh := make(chan Result, 1)
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn:      func() (any, error) { return nil, boom },
		ResultC: resCh,
	}))
	assert.ErrorIs(t, (<-resCh).Err, boom)
}

func TestSubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	wp.Close()
	wp.Close()

	err := wp.Submit(context.Background(), Task{Fn: func() (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSubmitHonorsContext(t *testing.T) {
	wp := NewWorkerPool(1, 0)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.Submit(context.Background(), Task{Fn: func() (any, error) {
		close(started)
		<-release
		return nil, nil
	}}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.Submit(ctx, Task{Fn: func() (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}
