package pibench

import "time"

// RunResult is one timed invocation of a strategy.
type RunResult struct {
	Estimate float64
	Elapsed  time.Duration
}

// Measure runs the strategy once under the wall clock.
func Measure(s Strategy, cfg Config) RunResult {
	start := time.Now()
	pi := s(cfg)
	return RunResult{Estimate: pi, Elapsed: time.Since(start)}
}

// MeasureRepeated runs the strategy cfg.Repetitions times on the same
// configuration and reports the individual runs plus the average elapsed
// time. Every repetition recomputes from scratch; nothing is cached between
// runs.
func MeasureRepeated(s Strategy, cfg Config) ([]RunResult, time.Duration) {
	runs := make([]RunResult, 0, cfg.Repetitions)

	var total time.Duration
	for i := 0; i < cfg.Repetitions; i++ {
		r := Measure(s, cfg)
		runs = append(runs, r)
		total += r.Elapsed
	}

	return runs, total / time.Duration(cfg.Repetitions)
}
