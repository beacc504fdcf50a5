package engine

import (
	"math"

	"roi-agent/domain"
)

// ROI returns the return on investment as a percentage.
// A zero investment yields 0 rather than an error; the ratio is
// meaningless in that case and division by zero must not leak out.
func ROI(investment, totalReturn float64) float64 {
	if investment == 0 {
		return 0
	}
	return (totalReturn - investment) / investment * 100
}

// NPV discounts the post-investment operating flows. The first monthly
// flow is discounted one period. The initial investment is deliberately
// excluded here: it is accounted for by ROI and payback, and the IRR
// solver uses its own total NPV that does include it.
func NPV(monthlyFlows []float64, discountRatePct float64) float64 {
	rate := 1 + discountRatePct/100
	total := 0.0
	for i, flow := range monthlyFlows {
		total += flow / math.Pow(rate, float64(i+1))
	}
	return total
}

// Payback scans the monthly flows for the month in which the cumulative
// position turns non-negative and interpolates linearly inside it.
// If the project never recovers the investment, Recovered is false and
// Months equals len(monthlyFlows). A zero flow cannot trigger breakeven;
// the scan moves on to the next month.
func Payback(initialInvestment float64, monthlyFlows []float64) domain.PaybackResult {
	cumulative := -initialInvestment
	if cumulative >= 0 {
		return domain.PaybackResult{Months: 0, Recovered: true}
	}
	for i, flow := range monthlyFlows {
		previous := cumulative
		cumulative += flow
		if cumulative >= 0 && flow > 0 {
			fraction := -previous / flow
			return domain.PaybackResult{Months: float64(i) + fraction, Recovered: true}
		}
	}
	return domain.PaybackResult{Months: float64(len(monthlyFlows)), Recovered: false}
}
