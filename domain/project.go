package domain

// ProjectInput holds the parameters describing an investment project.
// Monetary amounts share one implicit currency; rates are percentages.
type ProjectInput struct {
	InitialInvestment    float64 `json:"initial_investment"`
	DiscountRate         float64 `json:"discount_rate"`
	DurationMonths       int     `json:"duration_months"`
	AnnualRevenue        float64 `json:"annual_revenue"`
	AnnualRevenueGrowth  float64 `json:"annual_revenue_growth"`
	AnnualOperatingCosts float64 `json:"annual_operating_costs"`
	AnnualMaintenance    float64 `json:"annual_maintenance_costs"`
	BestCaseMultiplier   float64 `json:"best_case_multiplier"`
	WorstCaseMultiplier  float64 `json:"worst_case_multiplier"`
}

// CashFlowSeries is a projected monthly cash-flow sequence.
// Index 0 is the (negative) initial investment; indices 1..N are the
// net flows for months 1..N. Treated as immutable once produced.
type CashFlowSeries []float64

// Monthly returns the post-investment flows (months 1..N).
func (s CashFlowSeries) Monthly() []float64 {
	if len(s) == 0 {
		return nil
	}
	return s[1:]
}

// TotalReturn is the sum of all post-investment flows.
func (s CashFlowSeries) TotalReturn() float64 {
	total := 0.0
	for _, f := range s.Monthly() {
		total += f
	}
	return total
}

// Net is the overall cash position: investment plus all monthly flows.
func (s CashFlowSeries) Net() float64 {
	total := 0.0
	for _, f := range s {
		total += f
	}
	return total
}
