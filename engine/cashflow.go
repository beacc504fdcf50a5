// Package engine implements the project-finance calculation core:
// cash-flow projection, ROI, NPV, payback period and IRR, plus the
// expected/best/worst scenario orchestration. Every function is pure and
// performs no validation; callers sanitize input before invoking.
package engine

import (
	"math"

	"roi-agent/domain"
)

// ProjectCashFlows projects the monthly net cash flows of a project.
// The returned series has length DurationMonths+1: index 0 carries the
// negative initial investment, months 1..N carry revenue minus costs with
// the annual growth rate de-annualized geometrically.
func ProjectCashFlows(in domain.ProjectInput) domain.CashFlowSeries {
	monthlyRevenue := in.AnnualRevenue / 12
	monthlyCosts := (in.AnnualOperatingCosts + in.AnnualMaintenance) / 12

	monthlyGrowth := 0.0
	if in.AnnualRevenueGrowth != 0 {
		monthlyGrowth = math.Pow(1+in.AnnualRevenueGrowth/100, 1.0/12) - 1
	}

	flows := make(domain.CashFlowSeries, in.DurationMonths+1)
	flows[0] = -in.InitialInvestment
	for m := 1; m <= in.DurationMonths; m++ {
		growthFactor := math.Pow(1+monthlyGrowth, float64(m-1))
		flows[m] = monthlyRevenue*growthFactor - monthlyCosts
	}
	return flows
}
