package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers into a single runnable unit.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every registered worker in its own goroutine and returns
// immediately. Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
