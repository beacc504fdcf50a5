package domain

// IRRStatus reports how the IRR iteration terminated.
type IRRStatus string

const (
	// IRRConverged means the rate stabilized within tolerance.
	IRRConverged IRRStatus = "converged"
	// IRRDidNotConverge means the iteration cap was reached; RatePct is
	// the last iterate and should be treated as unreliable.
	IRRDidNotConverge IRRStatus = "did_not_converge"
	// IRRUnstable means the iteration hit a flat derivative or a
	// non-finite value and no meaningful rate exists.
	IRRUnstable IRRStatus = "unstable"
)

// IRRResult is the outcome of the internal rate of return solver.
type IRRResult struct {
	RatePct float64   `json:"rate_pct"`
	Status  IRRStatus `json:"status"`
}

// Reliable reports whether RatePct can be shown to a user as-is.
func (r IRRResult) Reliable() bool {
	return r.Status == IRRConverged
}

// PaybackResult is the outcome of the payback period scan.
// When Recovered is false, Months equals the number of projected months,
// so comparing Months against the project duration still detects failure.
type PaybackResult struct {
	Months    float64 `json:"months"`
	Recovered bool    `json:"recovered"`
}

// MetricsResult bundles every metric computed for one scenario.
type MetricsResult struct {
	ROIPct       float64        `json:"roi_pct"`
	NPV          float64        `json:"npv"`
	Payback      PaybackResult  `json:"payback"`
	IRR          IRRResult      `json:"irr"`
	CashFlows    CashFlowSeries `json:"cash_flows"`
	TotalRevenue float64        `json:"total_revenue"`
}

// Scenario names used as ScenarioSet keys in JSON output.
const (
	ScenarioExpected = "expected"
	ScenarioBest     = "best"
	ScenarioWorst    = "worst"
)

// ScenarioSet holds the three scenario results of one calculation.
// Built fresh on every request; never mutated afterwards.
type ScenarioSet struct {
	Expected MetricsResult `json:"expected"`
	Best     MetricsResult `json:"best"`
	Worst    MetricsResult `json:"worst"`
}
