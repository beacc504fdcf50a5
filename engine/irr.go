package engine

import (
	"math"

	"roi-agent/domain"
)

const (
	// DefaultIRRGuess is the starting rate for the Newton iteration.
	DefaultIRRGuess = 0.10

	irrMaxIterations = 100
	irrTolerance     = 1e-4

	// Derivatives closer to zero than this would blow up the Newton step.
	irrDerivativeFloor = 1e-12
)

// IRR solves for the monthly rate that zeroes the total NPV of the series
// (index 0, the investment, included) using Newton-Raphson from guess.
// Convergence is judged on the rate itself, not on the NPV value. The
// returned rate is a percentage. The iteration never errors: a flat
// derivative or non-finite intermediate yields IRRUnstable, and hitting
// the iteration cap yields IRRDidNotConverge with the last iterate.
func IRR(flows []float64, guess float64) domain.IRRResult {
	rate := guess
	for i := 0; i < irrMaxIterations; i++ {
		npv, dnpv := totalNPV(flows, rate)
		if !isFinite(npv) || !isFinite(dnpv) {
			return domain.IRRResult{RatePct: rate * 100, Status: domain.IRRUnstable}
		}
		if math.Abs(dnpv) < irrDerivativeFloor {
			return domain.IRRResult{RatePct: rate * 100, Status: domain.IRRUnstable}
		}

		newRate := rate - npv/dnpv
		if !isFinite(newRate) {
			return domain.IRRResult{RatePct: rate * 100, Status: domain.IRRUnstable}
		}
		if math.Abs(newRate-rate) < irrTolerance {
			return domain.IRRResult{RatePct: newRate * 100, Status: domain.IRRConverged}
		}
		rate = newRate
	}
	return domain.IRRResult{RatePct: rate * 100, Status: domain.IRRDidNotConverge}
}

// totalNPV evaluates the project NPV at rate together with its derivative
// with respect to the rate. Unlike NPV, the flow at index 0 is included,
// discounted zero periods.
func totalNPV(flows []float64, rate float64) (npv, dnpv float64) {
	for j, flow := range flows {
		denom := math.Pow(1+rate, float64(j))
		npv += flow / denom
		dnpv += -float64(j) * flow / math.Pow(1+rate, float64(j+1))
	}
	return npv, dnpv
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
