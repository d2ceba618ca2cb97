package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers collects the given workers into a single aggregate. Nil entries
// are skipped so callers can pass conditionally constructed workers directly.
func NewWorkers(list ...Worker) *Workers {
	out := &Workers{}
	for _, w := range list {
		if w != nil {
			out.workers = append(out.workers, w)
		}
	}
	return out
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
