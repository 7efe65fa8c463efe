package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// New returns a group of the given workers. Nil workers are skipped.
func New(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		w.Add(worker)
	}
	return w
}

// Add appends worker to the group. It must be called before Run.
func (w *Workers) Add(worker Worker) {
	if worker != nil {
		w.workers = append(w.workers, worker)
	}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned. The first worker to return cancels the others; the first
// non-nil error is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			defer cancel()
			return worker.Run(runCtx)
		})
	}

	return g.Wait()
}
