package service

import (
	"fmt"
	"strings"

	"roi-agent/domain"
)

type ReportService struct {
	recommendationService *RecommendationService
}

func NewReportService(recommendationService *RecommendationService) *ReportService {
	return &ReportService{recommendationService: recommendationService}
}

// GenerateReport analyzes the project and renders the result as markdown.
func (s *ReportService) GenerateReport(input domain.ProjectInput) (string, error) {
	analysis, err := s.recommendationService.Analyze(input)
	if err != nil {
		return "", err
	}
	return renderMarkdown(input, analysis), nil
}

func renderMarkdown(input domain.ProjectInput, analysis domain.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Project Investment Analysis\n\n")

	b.WriteString("## Parameters\n\n")
	fmt.Fprintf(&b, "| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Initial investment | %s |\n", formatMoney(input.InitialInvestment))
	fmt.Fprintf(&b, "| Annual revenue increase | %s |\n", formatMoney(input.AnnualRevenue))
	fmt.Fprintf(&b, "| Annual revenue growth | %s |\n", formatPercent(input.AnnualRevenueGrowth))
	fmt.Fprintf(&b, "| Annual operating costs | %s |\n", formatMoney(input.AnnualOperatingCosts))
	fmt.Fprintf(&b, "| Annual maintenance costs | %s |\n", formatMoney(input.AnnualMaintenance))
	fmt.Fprintf(&b, "| Duration | %d months |\n", input.DurationMonths)
	fmt.Fprintf(&b, "| Discount rate | %s |\n\n", formatPercent(input.DiscountRate))

	b.WriteString("## Scenarios\n\n")
	b.WriteString("| Scenario | ROI | NPV | IRR | Payback | Total revenue |\n|---|---|---|---|---|---|\n")
	writeScenarioRow(&b, "Expected", analysis.Scenarios.Expected)
	writeScenarioRow(&b, fmt.Sprintf("Best (x%.2f)", input.BestCaseMultiplier), analysis.Scenarios.Best)
	writeScenarioRow(&b, fmt.Sprintf("Worst (x%.2f)", input.WorstCaseMultiplier), analysis.Scenarios.Worst)
	b.WriteString("\n")

	b.WriteString("## Recommendations\n\n")
	for _, rec := range analysis.Recommendations {
		fmt.Fprintf(&b, "- **%s**: %s\n", rec.Severity, rec.Message)
	}
	fmt.Fprintf(&b, "\n**Verdict:** %s\n", analysis.Verdict)

	if analysis.Explanation != "" {
		fmt.Fprintf(&b, "\n## Summary\n\n%s\n", analysis.Explanation)
	}

	return b.String()
}

func writeScenarioRow(b *strings.Builder, name string, m domain.MetricsResult) {
	irr := "unreliable"
	if m.IRR.Reliable() {
		irr = formatPercent(m.IRR.RatePct)
	}
	payback := "not recovered"
	if m.Payback.Recovered {
		payback = formatMonths(m.Payback.Months)
	}
	fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
		name, formatPercent(m.ROIPct), formatMoney(m.NPV), irr, payback, formatMoney(m.TotalRevenue))
}
