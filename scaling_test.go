package pibench

import (
	"testing"
	"time"
)

// TestFitUSL_LinearScaling fits ideal linear data: C(N) = 1000N should
// recover λ ≈ 1000 with both coefficients near zero.
func TestFitUSL_LinearScaling(t *testing.T) {
	results := []ScalingResult{
		{N: 1, Throughput: 1000},
		{N: 2, Throughput: 2000},
		{N: 4, Throughput: 4000},
		{N: 8, Throughput: 8000},
	}

	coeffs, err := FitUSL(results)
	if err != nil {
		t.Fatalf("FitUSL failed: %v", err)
	}

	t.Logf("λ=%.2f, α=%.6f, β=%.6f, R²=%.4f",
		coeffs.Lambda, coeffs.Alpha, coeffs.Beta, coeffs.RSquared)

	if coeffs.Lambda < 900 || coeffs.Lambda > 1100 {
		t.Errorf("λ = %.2f, want ~1000", coeffs.Lambda)
	}
	if coeffs.Alpha > 0.01 {
		t.Errorf("α = %.6f, want ~0 for linear data", coeffs.Alpha)
	}
	if coeffs.Beta > 0.01 {
		t.Errorf("β = %.6f, want ~0 for linear data", coeffs.Beta)
	}
}

// TestFitUSL_WithContention fits data generated from a known contention
// model and checks α is recovered.
func TestFitUSL_WithContention(t *testing.T) {
	const (
		lambda = 1000.0
		alpha  = 0.1
	)

	var results []ScalingResult
	for _, n := range []int{1, 2, 4, 8} {
		throughput := (lambda * float64(n)) / (1 + alpha*float64(n-1))
		results = append(results, ScalingResult{N: n, Throughput: throughput})
	}

	coeffs, err := FitUSL(results)
	if err != nil {
		t.Fatalf("FitUSL failed: %v", err)
	}

	if coeffs.Alpha < 0.05 || coeffs.Alpha > 0.15 {
		t.Errorf("α = %.6f, want ~0.1", coeffs.Alpha)
	}
}

// TestFitUSL_TooFewPoints needs at least three concurrency levels.
func TestFitUSL_TooFewPoints(t *testing.T) {
	results := []ScalingResult{
		{N: 1, Throughput: 1000},
		{N: 2, Throughput: 1900},
	}

	if _, err := FitUSL(results); err == nil {
		t.Error("expected error for 2 data points, got nil")
	}
}

// TestMeasureScaling runs a real strategy at two levels and checks the
// recorded points are plausible: granted N, positive throughput, estimates
// still on π.
func TestMeasureScaling(t *testing.T) {
	cfg := Config{Steps: 200_000, Workers: 1, Repetitions: 1, Threshold: DefaultThreshold}

	results := MeasureScaling(Reduction, cfg, []int{1, 2})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for _, r := range results {
		if r.N != Granted(r.N) {
			t.Errorf("recorded N=%d is not a granted count", r.N)
		}
		if r.Throughput <= 0 {
			t.Errorf("N=%d: throughput %v, want > 0", r.N, r.Throughput)
		}
		if r.Elapsed <= 0 {
			t.Errorf("N=%d: elapsed %v, want > 0", r.N, r.Elapsed)
		}
		AssertEstimate(t, r.Estimate, 1e-5)
		t.Logf("N=%d: %.0f evals/sec in %v", r.N, r.Throughput, r.Elapsed.Round(time.Microsecond))
	}
}

// TestUSLCoefficients_Efficiency checks the ideal-scaling ratio at the
// endpoints: perfect at N=1, degraded under contention.
func TestUSLCoefficients_Efficiency(t *testing.T) {
	c := USLCoefficients{Lambda: 1000, Alpha: 0.1, Beta: 0}

	if got := c.Efficiency(1); got < 0.999 || got > 1.001 {
		t.Errorf("Efficiency(1) = %v, want 1.0", got)
	}
	if got := c.Efficiency(8); got >= 1.0 {
		t.Errorf("Efficiency(8) = %v, want < 1.0 under contention", got)
	}
}
