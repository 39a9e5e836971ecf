package pibench

import "sort"

// Strategy computes the midpoint-rule estimate of π for one configuration.
// Strategies trust their Config; the caller validates it first.
type Strategy func(Config) float64

// Strategies maps the CLI names to their implementations.
var Strategies = map[string]Strategy{
	"serial":     Serial,
	"block":      BlockPartition,
	"roundrobin": RoundRobin,
	"falseshare": FalseSharing,
	"padded":     Padded,
	"critical":   Critical,
	"divide":     DivideConquer,
	"reduction":  Reduction,
}

// StrategyNames returns the registry keys in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(Strategies))
	for name := range Strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// midpoint evaluates the integrand 4/(1+x²) at the center of rectangle i.
func midpoint(i int64, stepSize float64) float64 {
	x := (float64(i) + 0.5) * stepSize
	return 4.0 / (1.0 + x*x)
}

// Serial is the single-worker baseline: one pass over every rectangle.
func Serial(cfg Config) float64 {
	stepSize := cfg.StepSize()
	var sum float64
	for i := int64(0); i < cfg.Steps; i++ {
		sum += midpoint(i, stepSize)
	}
	return stepSize * sum
}
