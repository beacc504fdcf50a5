package service

import (
	"fmt"

	"roi-agent/config"
	"roi-agent/domain"
)

type RecommendationService struct {
	metricsService *MetricsService
	aiService      *AIService
	thresholds     config.ThresholdsConfig
}

func NewRecommendationService(
	metricsService *MetricsService,
	thresholds config.ThresholdsConfig,
) *RecommendationService {
	return &RecommendationService{
		metricsService: metricsService,
		aiService:      NewAIService(),
		thresholds:     thresholds,
	}
}

// Analyze computes the scenarios for the input and derives threshold-rule
// recommendations, an overall verdict and a narrative explanation.
func (s *RecommendationService) Analyze(
	input domain.ProjectInput,
) (domain.AnalysisResult, error) {

	scenarios, err := s.metricsService.ComputeScenarios(input)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	recommendations := s.evaluateRules(input, scenarios)
	verdict := verdictFor(recommendations)

	explanation := s.aiService.GenerateScenarioExplanation(input, scenarios, verdict)

	return domain.AnalysisResult{
		Scenarios:       scenarios,
		Recommendations: recommendations,
		Verdict:         verdict,
		Explanation:     explanation,
	}, nil
}

func (s *RecommendationService) evaluateRules(
	input domain.ProjectInput,
	set domain.ScenarioSet,
) []domain.Recommendation {

	recs := []domain.Recommendation{}
	expected := set.Expected

	if expected.NPV > 0 {
		recs = append(recs, domain.Recommendation{
			Rule:     "npv_positive",
			Severity: domain.SeverityPositive,
			Message: fmt.Sprintf("The discounted operating cash flows are worth %s at a %s discount rate.",
				formatMoney(expected.NPV), formatPercent(input.DiscountRate)),
		})
	} else {
		recs = append(recs, domain.Recommendation{
			Rule:     "npv_negative",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("The discounted operating cash flows are only worth %s; the project destroys value at a %s discount rate.",
				formatMoney(expected.NPV), formatPercent(input.DiscountRate)),
		})
	}

	if !expected.Payback.Recovered {
		recs = append(recs, domain.Recommendation{
			Rule:     "payback_failed",
			Severity: domain.SeverityCritical,
			Message: fmt.Sprintf("The investment of %s is not recovered within the %d-month project duration.",
				formatMoney(input.InitialInvestment), input.DurationMonths),
		})
	} else {
		recs = append(recs, domain.Recommendation{
			Rule:     "payback_ok",
			Severity: domain.SeverityPositive,
			Message: fmt.Sprintf("The investment is recovered after %s.",
				formatMonths(expected.Payback.Months)),
		})
	}

	switch {
	case !expected.IRR.Reliable():
		recs = append(recs, domain.Recommendation{
			Rule:     "irr_unreliable",
			Severity: domain.SeverityWarning,
			Message:  "The internal rate of return did not converge; treat the reported rate as unreliable.",
		})
	case expected.IRR.RatePct > input.DiscountRate:
		recs = append(recs, domain.Recommendation{
			Rule:     "irr_exceeds_hurdle",
			Severity: domain.SeverityPositive,
			Message: fmt.Sprintf("The internal rate of return (%s) exceeds the %s discount rate.",
				formatPercent(expected.IRR.RatePct), formatPercent(input.DiscountRate)),
		})
	default:
		recs = append(recs, domain.Recommendation{
			Rule:     "irr_below_hurdle",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("The internal rate of return (%s) is below the %s discount rate.",
				formatPercent(expected.IRR.RatePct), formatPercent(input.DiscountRate)),
		})
	}

	if expected.ROIPct < s.thresholds.MinROIPct {
		recs = append(recs, domain.Recommendation{
			Rule:     "roi_below_minimum",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("The expected ROI of %s is below the %s minimum.",
				formatPercent(expected.ROIPct), formatPercent(s.thresholds.MinROIPct)),
		})
	}

	spread := set.Best.ROIPct - set.Worst.ROIPct
	if spread > s.thresholds.MaxScenarioSpreadPct {
		recs = append(recs, domain.Recommendation{
			Rule:     "scenario_spread_high",
			Severity: domain.SeverityWarning,
			Message: fmt.Sprintf("The ROI spread between best and worst case is %s; the outcome is highly sensitive to revenue.",
				formatPercent(spread)),
		})
	}

	if set.Worst.NPV > 0 {
		recs = append(recs, domain.Recommendation{
			Rule:     "worst_case_robust",
			Severity: domain.SeverityPositive,
			Message:  "Even the worst-case scenario keeps a positive operating NPV.",
		})
	}

	return recs
}

// verdictFor condenses the recommendation severities into one verdict.
func verdictFor(recs []domain.Recommendation) string {
	warnings := 0
	for _, rec := range recs {
		switch rec.Severity {
		case domain.SeverityCritical:
			return "not viable"
		case domain.SeverityWarning:
			warnings++
		}
	}
	if warnings > 1 {
		return "marginal"
	}
	return "viable"
}
