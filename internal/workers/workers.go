package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add appends w to the group. Nil workers are ignored.
func (w *Workers) Add(worker Worker) {
	if worker == nil {
		return
	}
	w.workers = append(w.workers, worker)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

func (w *Workers) Len() int {
	return len(w.workers)
}
