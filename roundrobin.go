package pibench

// roundRobinInto is the SPMD loop shared by the stride-partition variants:
// worker id visits indices id, id+granted, id+2*granted, ... and accumulates
// into its own slot of sums. The variants differ only in the slot stride they
// allocate, which is the whole point of keeping this body identical.
func roundRobinInto(cfg Config, stride int) float64 {
	stepSize := cfg.StepSize()
	sums := NewSumArray(cfg.Workers, stride)

	granted := ForkJoin(cfg.Workers, func(id, granted int) {
		for i := int64(id); i < cfg.Steps; i += int64(granted) {
			sums.Add(id, midpoint(i, stepSize))
		}
	})

	return stepSize * sums.Total(granted)
}

// RoundRobin interleaves the iteration space across workers in stride-W
// order. Work per index is uniform here, so the interleaving demonstrates
// load-balance independence from task size rather than buying anything; the
// cost is weaker memory locality than block partitioning. Slots are padded,
// the well-behaved layout.
func RoundRobin(cfg Config) float64 {
	return roundRobinInto(cfg, PaddedStride())
}

// FalseSharing is RoundRobin over tightly packed slots: several workers'
// accumulators share each cache line, and every Add forces coherency traffic.
// The estimate is identical to RoundRobin and Padded; the difference is
// measurable wall time, not correctness.
func FalseSharing(cfg Config) float64 {
	return roundRobinInto(cfg, TightStride)
}

// Padded is RoundRobin with each slot on its own cache line, so concurrent
// writes never share a line. Same numeric result as FalseSharing.
func Padded(cfg Config) float64 {
	return roundRobinInto(cfg, PaddedStride())
}
