package service

import (
	"context"

	"staff-directory/pkg/workerpool"
)

// AsyncService funnels work through a worker pool. Callers that share a
// single-worker pool never run concurrently with each other.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result or ctx. If ctx is
// done by the time a worker picks the task up, fn is skipped, so a caller
// that gave up never sees its work applied later.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	task := workerpool.Task{
		Fn: func() (any, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return fn()
		},
		ResultC: resCh,
	}
	if err := a.Pool.Submit(ctx, task); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
