package engine

import (
	"sync"

	"roi-agent/domain"
)

// RunMetrics projects the cash flows of one parameter set and computes
// every metric over them.
func RunMetrics(in domain.ProjectInput) domain.MetricsResult {
	flows := ProjectCashFlows(in)
	monthly := flows.Monthly()
	totalReturn := flows.TotalReturn()

	return domain.MetricsResult{
		ROIPct:       ROI(in.InitialInvestment, totalReturn),
		NPV:          NPV(monthly, in.DiscountRate),
		Payback:      Payback(in.InitialInvestment, monthly),
		IRR:          IRR(flows, DefaultIRRGuess),
		CashFlows:    flows,
		TotalRevenue: totalReturn,
	}
}

// ComputeScenarios runs the metrics for the expected case and for the
// best/worst variants, which scale the annual revenue by the respective
// multiplier and leave every other parameter untouched. The three runs
// share no state, so they execute concurrently.
func ComputeScenarios(in domain.ProjectInput) domain.ScenarioSet {
	best := in
	best.AnnualRevenue *= in.BestCaseMultiplier

	worst := in
	worst.AnnualRevenue *= in.WorstCaseMultiplier

	var set domain.ScenarioSet
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		set.Expected = RunMetrics(in)
	}()
	go func() {
		defer wg.Done()
		set.Best = RunMetrics(best)
	}()
	go func() {
		defer wg.Done()
		set.Worst = RunMetrics(worst)
	}()
	wg.Wait()
	return set
}
