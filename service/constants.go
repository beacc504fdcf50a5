package service

const (
	MaxInvestment     = 1_000_000_000.0 // upper bound on the initial investment
	MaxAnnualRevenue  = 1_000_000_000.0
	MaxAnnualCosts    = 1_000_000_000.0
	MaxDiscountRate   = 100.0 // percent
	MinDiscountRate   = 0.0
	MaxDurationMonths = 600 // 50 years
	MinDurationMonths = 1
	MaxGrowthRate     = 1000.0 // percent per year
	MinGrowthRate     = -100.0 // total collapse; anything below is nonsense
	MaxCaseMultiplier = 10.0   // best case cannot exceed 10x revenue
)
