package pibench

import (
	"fmt"
	"runtime"
)

// Defaults for a run. All of them can be overridden from the CLI.
const (
	DefaultSteps       int64 = 1_000_000_000
	DefaultRepetitions       = 1
	DefaultThreshold   int64 = 100_000
)

// Config holds the immutable parameters of one estimation run.
type Config struct {
	Steps       int64 // number of midpoint rectangles over [0,1]
	Workers     int   // requested parallelism; the grant may be lower
	Repetitions int   // timed repetitions of the same run
	Threshold   int64 // serial cutoff for the divide-and-conquer strategy
}

// DefaultConfig returns the defaults: 1e9 steps, one worker per logical CPU,
// a single repetition.
func DefaultConfig() Config {
	return Config{
		Steps:       DefaultSteps,
		Workers:     runtime.NumCPU(),
		Repetitions: DefaultRepetitions,
		Threshold:   DefaultThreshold,
	}
}

// StepSize returns the width of one rectangle.
func (c Config) StepSize() float64 {
	return 1.0 / float64(c.Steps)
}

// Validate rejects configurations that would divide by zero or spawn no
// workers. It runs once, before any parallel phase; no error is expected to
// originate inside a worker. Values that merely look unreasonable (huge step
// counts, more workers than cores) pass: out-of-range inputs are a documented
// limitation, not a validation target.
func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("invalid number of steps [%d]", c.Steps)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("invalid number of workers [%d]", c.Workers)
	}
	if c.Repetitions <= 0 {
		return fmt.Errorf("invalid number of repetitions [%d]", c.Repetitions)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("invalid task threshold [%d]", c.Threshold)
	}
	return nil
}
