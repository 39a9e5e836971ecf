package pibench

import (
	"math"
	"testing"
)

// AssertPartitionCover verifies the block partition assigns every index in
// [0, steps) to exactly one worker: no gap, no overlap, including the
// remainder indices when workers does not divide steps.
func AssertPartitionCover(t *testing.T, steps int64, workers int) {
	t.Helper()

	var covered int64
	prevEnd := int64(0)
	for id := 0; id < workers; id++ {
		start, end := blockRange(steps, id, workers)
		if start != prevEnd {
			t.Errorf("worker %d: range starts at %d, previous ended at %d (gap or overlap)",
				id, start, prevEnd)
		}
		if end < start {
			t.Errorf("worker %d: inverted range [%d, %d)", id, start, end)
		}
		covered += end - start
		prevEnd = end
	}

	if prevEnd != steps {
		t.Errorf("partition ends at %d, want %d", prevEnd, steps)
	}
	if covered != steps {
		t.Errorf("partition covers %d indices, want %d", covered, steps)
	}
}

// AssertEstimate verifies a π estimate agrees with the true value within the
// given relative tolerance.
func AssertEstimate(t *testing.T, got, relTol float64) {
	t.Helper()

	rel := math.Abs(got-math.Pi) / math.Pi
	if rel > relTol {
		t.Errorf("estimate %.20f off π by %.3g relative (max: %.3g)", got, rel, relTol)
	}
}

// AssertAgree verifies two estimates agree within a relative tolerance.
// Never assert bit equality across strategies or worker counts: float
// addition is not associative, so summation order legitimately changes the
// low bits.
func AssertAgree(t *testing.T, a, b, relTol float64) {
	t.Helper()

	rel := math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
	if rel > relTol {
		t.Errorf("estimates disagree: %.20f vs %.20f (%.3g relative, max: %.3g)",
			a, b, rel, relTol)
	}
}

// AssertZeroCoordination verifies the fitted β (coordination coefficient) of
// a scaling measurement stays below maxBeta. β near zero means no cache
// coherency traffic between workers; a false-sharing layout fails this where
// the padded layout passes.
func AssertZeroCoordination(t *testing.T, results []ScalingResult, maxBeta float64) {
	t.Helper()

	coeffs, err := FitUSL(results)
	if err != nil {
		t.Fatalf("USL fit failed: %v", err)
	}

	if coeffs.Beta > maxBeta {
		t.Errorf("coordination overhead too high: β = %.6f (max: %.6f)", coeffs.Beta, maxBeta)
	}

	t.Logf("β = %.6f (threshold %.6f), α = %.6f, R² = %.4f",
		coeffs.Beta, maxBeta, coeffs.Alpha, coeffs.RSquared)
}
