package pibench

import (
	"fmt"
	"math"
	"time"
)

// ScalingResult is the throughput measured at one worker count.
type ScalingResult struct {
	N          int           // granted workers
	Throughput float64       // midpoint evaluations per second
	Elapsed    time.Duration // wall time of the run
	Estimate   float64       // the π estimate, for sanity checks
}

// USLCoefficients are the fitted Universal Scalability Law parameters for
//
//	C(N) = λN / (1 + α(N-1) + βN(N-1))
type USLCoefficients struct {
	Lambda   float64 // λ: serial throughput (evaluations/sec at N=1)
	Alpha    float64 // α: contention coefficient (lock waiting)
	Beta     float64 // β: coordination coefficient (cache coherency)
	RSquared float64 // R²: goodness of fit (1.0 = perfect)
}

// MeasureScaling times the strategy at each requested worker count. The
// recorded N is the granted count, not the request, so levels above
// GOMAXPROCS collapse onto the same point.
//
// Contention measurement depends on GOMAXPROCS: levels beyond it measure
// scheduler time-sharing, not the strategy.
func MeasureScaling(s Strategy, cfg Config, levels []int) []ScalingResult {
	results := make([]ScalingResult, 0, len(levels))

	for _, n := range levels {
		runCfg := cfg
		runCfg.Workers = n
		r := Measure(s, runCfg)

		results = append(results, ScalingResult{
			N:          Granted(n),
			Throughput: float64(cfg.Steps) / r.Elapsed.Seconds(),
			Elapsed:    r.Elapsed,
			Estimate:   r.Estimate,
		})
	}

	return results
}

// FitUSL recovers λ, α, β from measured scaling results.
//
// The USL linearizes: with Y = N/C(N),
//
//	Y = 1/λ + (α/λ)(N-1) + (β/λ)N(N-1)
//
// which is an ordinary least-squares problem in b0=1/λ, b1=α/λ, b2=β/λ,
// solved here as a 3x3 normal-equation system via Cramer's rule. A fitted
// β < 0 is a linearization artifact on noisy data (it would mean superlinear
// scaling) and is clamped to zero.
func FitUSL(results []ScalingResult) (USLCoefficients, error) {
	if len(results) < 3 {
		return USLCoefficients{}, fmt.Errorf("need at least 3 data points, got %d", len(results))
	}

	var n, sy, sx1, sx2, sx11, sx22, sx12, syx1, syx2 float64
	for _, r := range results {
		if r.Throughput == 0 {
			continue
		}
		N := float64(r.N)
		y := N / r.Throughput
		x1 := N - 1
		x2 := N * (N - 1)

		n++
		sy += y
		sx1 += x1
		sx2 += x2
		sx11 += x1 * x1
		sx22 += x2 * x2
		sx12 += x1 * x2
		syx1 += y * x1
		syx2 += y * x2
	}

	det := n*(sx11*sx22-sx12*sx12) - sx1*(sx1*sx22-sx12*sx2) + sx2*(sx1*sx12-sx11*sx2)
	if math.Abs(det) < 1e-10 {
		return USLCoefficients{}, fmt.Errorf("degenerate scaling data: singular normal equations")
	}

	det0 := sy*(sx11*sx22-sx12*sx12) - sx1*(syx1*sx22-sx12*syx2) + sx2*(syx1*sx12-sx11*syx2)
	det1 := n*(syx1*sx22-sx12*syx2) - sy*(sx1*sx22-sx12*sx2) + sx2*(sx1*syx2-syx1*sx2)
	det2 := n*(sx11*syx2-syx1*sx12) - sx1*(sx1*syx2-syx1*sx2) + sy*(sx1*sx12-sx11*sx2)

	b0 := det0 / det
	b1 := det1 / det
	b2 := det2 / det

	coeffs := USLCoefficients{
		Lambda: 1.0 / b0,
		Alpha:  b1 / b0,
		Beta:   b2 / b0,
	}
	if coeffs.Beta < 0 {
		coeffs.Beta = 0
	}

	// R² against the recovered model.
	var mean float64
	for _, r := range results {
		mean += r.Throughput
	}
	mean /= float64(len(results))

	var ssRes, ssTot float64
	for _, r := range results {
		predicted := uslModel(float64(r.N), coeffs.Lambda, coeffs.Alpha, coeffs.Beta)
		ssRes += (r.Throughput - predicted) * (r.Throughput - predicted)
		ssTot += (r.Throughput - mean) * (r.Throughput - mean)
	}
	if ssTot > 0 {
		coeffs.RSquared = 1 - ssRes/ssTot
	}

	return coeffs, nil
}

// uslModel calculates predicted throughput at concurrency n.
func uslModel(n, lambda, alpha, beta float64) float64 {
	return (lambda * n) / (1 + alpha*(n-1) + beta*n*(n-1))
}

// PredictThroughput estimates throughput at a given worker count.
func (c USLCoefficients) PredictThroughput(n int) float64 {
	return uslModel(float64(n), c.Lambda, c.Alpha, c.Beta)
}

// Efficiency returns the ratio of predicted to ideal (λN) throughput.
// 1.0 is perfect linear scaling.
func (c USLCoefficients) Efficiency(n int) float64 {
	ideal := c.Lambda * float64(n)
	if ideal == 0 {
		return 0
	}
	return c.PredictThroughput(n) / ideal
}
