package pibench

// BlockPartition assigns each worker one contiguous half-open index range and
// a private accumulator slot. Slots are disjoint, so the parallel phase needs
// no locks; the join is the only synchronization before the sequential
// reduction. Block partitioning buys per-worker spatial locality at the price
// of manual range-boundary arithmetic.
func BlockPartition(cfg Config) float64 {
	stepSize := cfg.StepSize()
	sums := NewSumArray(cfg.Workers, PaddedStride())

	granted := ForkJoin(cfg.Workers, func(id, granted int) {
		start, end := blockRange(cfg.Steps, id, granted)
		for i := start; i < end; i++ {
			sums.Add(id, midpoint(i, stepSize))
		}
	})

	return stepSize * sums.Total(granted)
}

// blockRange returns worker id's half-open slice of [0, steps). The last
// worker absorbs the remainder when workers does not divide steps; the union
// of all ranges must cover [0, steps) exactly once.
func blockRange(steps int64, id, workers int) (start, end int64) {
	per := steps / int64(workers)
	start = per * int64(id)
	end = per * int64(id+1)
	if id == workers-1 {
		end = steps
	}
	return start, end
}
