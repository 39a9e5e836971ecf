package pibench

import "github.com/klauspost/cpuid/v2"

// TightStride packs per-worker slots back to back. Adjacent workers then
// share a cache line, which is exactly the layout the false-sharing variant
// wants to demonstrate.
const TightStride = 1

// PaddedStride returns the slot stride, in float64 elements, that keeps two
// workers' accumulators off the same cache line. The line size comes from
// the CPU; 64 bytes is assumed when it cannot be detected.
func PaddedStride() int {
	line := cpuid.CPU.CacheLine
	if line <= 0 {
		line = 64
	}
	stride := line / 8 // 8 bytes per float64
	if stride < 1 {
		stride = 1
	}
	return stride
}

// SumArray holds one float64 accumulator per worker, spaced by a configurable
// element stride. During the parallel phase each slot is written only by its
// owning worker, so no synchronization is needed; after the join the array is
// read-only and summed sequentially.
type SumArray struct {
	stride int
	slots  []float64
}

// NewSumArray allocates zeroed accumulators for the given worker count.
// Stride 1 is the tight layout; PaddedStride() isolates each slot on its own
// cache line.
func NewSumArray(workers, stride int) *SumArray {
	if stride < 1 {
		stride = 1
	}
	return &SumArray{
		stride: stride,
		slots:  make([]float64, workers*stride),
	}
}

// Add accumulates v into worker id's slot.
func (a *SumArray) Add(id int, v float64) {
	a.slots[id*a.stride] += v
}

// At returns worker id's accumulated sum.
func (a *SumArray) At(id int) float64 {
	return a.slots[id*a.stride]
}

// Workers returns the number of slots.
func (a *SumArray) Workers() int {
	return len(a.slots) / a.stride
}

// Total sums the first n slots. Summing over more slots than were granted is
// harmless (untouched slots stay zero); summing over fewer drops real work.
func (a *SumArray) Total(n int) float64 {
	var total float64
	for i := 0; i < n; i++ {
		total += a.slots[i*a.stride]
	}
	return total
}

// Reset zeroes every slot so the array can back another run.
func (a *SumArray) Reset() {
	for i := range a.slots {
		a.slots[i] = 0
	}
}
