package pibench

import "sync"

// Critical accumulates through one shared, mutex-guarded total instead of
// per-worker slots. Each worker sums its round-robin indices into a local
// scalar and takes the lock exactly once to merge it; locking per index would
// still be correct but would serialize the whole computation. The total is a
// fresh handle per run, read only after the join.
func Critical(cfg Config) float64 {
	stepSize := cfg.StepSize()

	var (
		mu    sync.Mutex
		total float64
	)

	ForkJoin(cfg.Workers, func(id, granted int) {
		var sum float64
		for i := int64(id); i < cfg.Steps; i += int64(granted) {
			sum += midpoint(i, stepSize)
		}

		mu.Lock()
		total += sum
		mu.Unlock()
	})

	return stepSize * total
}
