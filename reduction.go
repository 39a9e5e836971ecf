package pibench

import "sync/atomic"

// reductionChunk is the number of indices handed out per cursor claim. Small
// enough to balance load across workers, large enough that the atomic claim
// is noise next to the arithmetic it pays for.
const reductionChunk = 65536

// Reduction delegates partition bookkeeping to the scheduler instead of
// manual range math: a shared atomic cursor hands out fixed-size chunks of
// [0, steps) on demand, each worker folds its chunks into a local sum, and
// the per-worker partials are combined by addition after the join. This is
// the idiomatic baseline the manual variants are compared against.
func Reduction(cfg Config) float64 {
	stepSize := cfg.StepSize()
	sums := NewSumArray(cfg.Workers, PaddedStride())

	var cursor atomic.Int64
	granted := ForkJoin(cfg.Workers, func(id, granted int) {
		var sum float64
		for {
			start := cursor.Add(reductionChunk) - reductionChunk
			if start >= cfg.Steps {
				break
			}
			end := start + reductionChunk
			if end > cfg.Steps {
				end = cfg.Steps
			}
			for i := start; i < end; i++ {
				sum += midpoint(i, stepSize)
			}
		}
		sums.Add(id, sum)
	})

	return stepSize * sums.Total(granted)
}
