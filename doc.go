// Package pibench is a teaching collection of parallel integration strategies,
// all computing the same quantity: the midpoint-rule integral of 4/(1+x²)
// over [0,1], which converges to π.
//
// # Overview
//
// Every strategy shares one contract:
//
//	type Strategy func(Config) float64
//
// and differs only in how it decomposes the iteration space and where the
// per-worker partial sums live. The interesting engineering is entirely in
// the decomposition and the memory layout, not in the math.
//
// # Strategies
//
// The registry (see Strategies) contains:
//
//   - serial     - single-pass baseline, no concurrency
//   - block      - contiguous index ranges, one private slot per worker
//   - roundrobin - stride-W interleaving, one private slot per worker
//   - falseshare - round-robin into tightly packed slots (cache-hostile)
//   - padded     - round-robin into cache-line-isolated slots
//   - critical   - local sums merged under one mutex, one lock per worker
//   - divide     - recursive spawn/join with a serial cutoff threshold
//   - reduction  - dynamic chunk handout, partials combined by addition
//
// falseshare and padded compute identical values; the pair exists to make
// cache-coherency traffic measurable. Their difference shows up as the β
// (coordination) coefficient of a Universal Scalability Law fit, not in the
// returned estimate.
//
// # Fork-join and granted workers
//
// Parallel regions use ForkJoin: spawn a fresh team, run the body on every
// worker, join, then reduce sequentially. The environment may grant fewer
// workers than requested, so the grant is reported to every body and all
// partitioning math must use it:
//
//	granted := pibench.ForkJoin(requested, func(id, granted int) {
//	    // partition [0, steps) by id out of granted, never out of requested
//	})
//
// Partitioning by the requested count instead silently corrupts the result:
// slots go unsummed, or workers iterate out of range.
//
// # Quick start
//
//	cfg := pibench.DefaultConfig()
//	cfg.Steps = 1_000_000
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	pi := pibench.Reduction(cfg)
//	fmt.Printf("pi=%.20f\n", pi)
//
// Timed runs go through the harness:
//
//	runs, avg := pibench.MeasureRepeated(pibench.BlockPartition, cfg)
//
// # Scalability measurement
//
// MeasureScaling times a strategy across worker counts and FitUSL fits the
// throughput curve to the Universal Scalability Law:
//
//	C(N) = λN / (1 + α(N-1) + βN(N-1))
//
// A padded accumulator layout should fit with β ≈ 0; the false-sharing
// layout shows its cache-line ping-pong as β > 0 at the same α.
//
// # Determinism
//
// Floating-point addition is not associative. Different strategies, worker
// counts, or recursion splits produce bit-different estimates that agree to
// well within 1e-9 relative error. Tests assert tolerance, never equality.
//
// # Testing
//
// Assertion helpers validate the properties that matter:
//
//	pibench.AssertPartitionCover(t, 17, 5)            // no gap, no overlap
//	pibench.AssertEstimate(t, pi, 1e-6)               // agrees with π
//	pibench.AssertAgree(t, a, b, 1e-9)                // strategies agree
//	pibench.AssertZeroCoordination(t, results, 0.01)  // β near zero
package pibench
