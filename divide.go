package pibench

// task is a spawn/join handle for one recursive partial sum. The
// two-children-then-join idiom below is the only shape ever built with it;
// there is deliberately no general task graph behind the pair.
type task struct {
	res chan float64
}

// spawn schedules fn as an independently runnable unit and returns its
// handle. The Go scheduler decides where it runs; no dedicated worker is
// reserved.
func spawn(fn func() float64) *task {
	t := &task{res: make(chan float64, 1)}
	go func() { t.res <- fn() }()
	return t
}

// join blocks until the task completes and returns its result.
func (t *task) join() float64 {
	return <-t.res
}

// partialSum computes the midpoint sum over [start, end). Ranges at or below
// threshold are summed serially; larger ones split at the midpoint index,
// spawn both halves, and add the joined results. Using <= rather than < lets
// threshold 1 bottom out at single-index ranges instead of recursing forever
// on them.
func partialSum(start, end int64, stepSize float64, threshold int64) float64 {
	if end-start <= threshold {
		var sum float64
		for i := start; i < end; i++ {
			sum += midpoint(i, stepSize)
		}
		return sum
	}

	mid := start + (end-start)/2
	left := spawn(func() float64 {
		return partialSum(start, mid, stepSize, threshold)
	})
	right := spawn(func() float64 {
		return partialSum(mid, end, stepSize, threshold)
	})
	return left.join() + right.join()
}

// DivideConquer estimates π by recursive divide-and-conquer over [0, steps),
// started as a single top-level call. cfg.Threshold trades task-creation
// overhead against granularity: too low floods the scheduler with tiny tasks,
// too high serializes most of the work. A threshold at or above cfg.Steps
// degrades to one serial pass.
func DivideConquer(cfg Config) float64 {
	stepSize := cfg.StepSize()
	return stepSize * partialSum(0, cfg.Steps, stepSize, cfg.Threshold)
}
