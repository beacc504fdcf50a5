package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"roi-agent/domain"
	"roi-agent/repository"
	"roi-agent/service"
)

var (
	projectFile string
	showReport  bool

	flagInvestment   float64
	flagDiscountRate float64
	flagDuration     int
	flagRevenue      float64
	flagGrowth       float64
	flagOperating    float64
	flagMaintenance  float64
	flagBestCase     float64
	flagWorstCase    float64
)

var (
	titleColor    = color.New(color.FgMagenta, color.Bold)
	positiveColor = color.New(color.FgGreen, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	criticalColor = color.New(color.FgRed, color.Bold)
)

// projectFileInput mirrors domain.ProjectInput for YAML project files.
type projectFileInput struct {
	InitialInvestment    float64 `yaml:"initial_investment"`
	DiscountRate         float64 `yaml:"discount_rate"`
	DurationMonths       int     `yaml:"duration_months"`
	AnnualRevenue        float64 `yaml:"annual_revenue"`
	AnnualRevenueGrowth  float64 `yaml:"annual_revenue_growth"`
	AnnualOperatingCosts float64 `yaml:"annual_operating_costs"`
	AnnualMaintenance    float64 `yaml:"annual_maintenance_costs"`
	BestCaseMultiplier   float64 `yaml:"best_case_multiplier"`
	WorstCaseMultiplier  float64 `yaml:"worst_case_multiplier"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute scenario metrics and recommendations for a project",
	Long: `Projects the monthly cash flows for the given parameters, computes
ROI, NPV, payback period and IRR for the expected, best and worst case,
and prints the resulting recommendations.

Parameters come from flags or from a YAML project file:

  roicli analyze --investment 150000 --revenue 75000 --duration 24 --rate 10
  roicli analyze --file project.yaml --report`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&projectFile, "file", "f", "", "YAML file with project parameters")
	analyzeCmd.Flags().BoolVar(&showReport, "report", false, "print the full markdown report")

	analyzeCmd.Flags().Float64Var(&flagInvestment, "investment", 0, "initial investment")
	analyzeCmd.Flags().Float64Var(&flagDiscountRate, "rate", 10, "annual discount rate in percent")
	analyzeCmd.Flags().IntVar(&flagDuration, "duration", 24, "project duration in months")
	analyzeCmd.Flags().Float64Var(&flagRevenue, "revenue", 0, "annual revenue increase")
	analyzeCmd.Flags().Float64Var(&flagGrowth, "growth", 0, "annual revenue growth in percent")
	analyzeCmd.Flags().Float64Var(&flagOperating, "operating-costs", 0, "annual operating costs")
	analyzeCmd.Flags().Float64Var(&flagMaintenance, "maintenance-costs", 0, "annual maintenance costs")
	analyzeCmd.Flags().Float64Var(&flagBestCase, "best-case", 1.3, "best-case revenue multiplier")
	analyzeCmd.Flags().Float64Var(&flagWorstCase, "worst-case", 0.7, "worst-case revenue multiplier")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input, err := resolveInput()
	if err != nil {
		return err
	}

	metricsService := service.NewMetricsService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewMockCache(),
	)
	recommendationService := service.NewRecommendationService(metricsService, cfg.Thresholds)

	analysis, err := recommendationService.Analyze(input)
	if err != nil {
		return err
	}

	printSummary(input, analysis)

	if showReport {
		reportService := service.NewReportService(recommendationService)
		report, err := reportService.GenerateReport(input)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(report)
	}

	return nil
}

func resolveInput() (domain.ProjectInput, error) {
	if projectFile == "" {
		return domain.ProjectInput{
			InitialInvestment:    flagInvestment,
			DiscountRate:         flagDiscountRate,
			DurationMonths:       flagDuration,
			AnnualRevenue:        flagRevenue,
			AnnualRevenueGrowth:  flagGrowth,
			AnnualOperatingCosts: flagOperating,
			AnnualMaintenance:    flagMaintenance,
			BestCaseMultiplier:   flagBestCase,
			WorstCaseMultiplier:  flagWorstCase,
		}, nil
	}

	data, err := os.ReadFile(projectFile)
	if err != nil {
		return domain.ProjectInput{}, fmt.Errorf("failed to read project file: %w", err)
	}

	var file projectFileInput
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ProjectInput{}, fmt.Errorf("failed to parse project file: %w", err)
	}

	return domain.ProjectInput{
		InitialInvestment:    file.InitialInvestment,
		DiscountRate:         file.DiscountRate,
		DurationMonths:       file.DurationMonths,
		AnnualRevenue:        file.AnnualRevenue,
		AnnualRevenueGrowth:  file.AnnualRevenueGrowth,
		AnnualOperatingCosts: file.AnnualOperatingCosts,
		AnnualMaintenance:    file.AnnualMaintenance,
		BestCaseMultiplier:   file.BestCaseMultiplier,
		WorstCaseMultiplier:  file.WorstCaseMultiplier,
	}, nil
}

func printSummary(input domain.ProjectInput, analysis domain.AnalysisResult) {
	titleColor.Println("Project Investment Analysis")
	fmt.Println()

	fmt.Printf("%-10s %12s %14s %14s %14s\n", "Scenario", "ROI", "NPV", "IRR", "Payback")
	printScenarioLine("expected", analysis.Scenarios.Expected)
	printScenarioLine("best", analysis.Scenarios.Best)
	printScenarioLine("worst", analysis.Scenarios.Worst)
	fmt.Println()

	for _, rec := range analysis.Recommendations {
		switch rec.Severity {
		case domain.SeverityCritical:
			criticalColor.Printf("✗ %s\n", rec.Message)
		case domain.SeverityWarning:
			warningColor.Printf("! %s\n", rec.Message)
		case domain.SeverityPositive:
			positiveColor.Printf("✓ %s\n", rec.Message)
		default:
			fmt.Printf("- %s\n", rec.Message)
		}
	}

	fmt.Println()
	switch analysis.Verdict {
	case "viable":
		positiveColor.Printf("Verdict: %s\n", analysis.Verdict)
	case "marginal":
		warningColor.Printf("Verdict: %s\n", analysis.Verdict)
	default:
		criticalColor.Printf("Verdict: %s\n", analysis.Verdict)
	}

	if analysis.Explanation != "" {
		fmt.Println()
		fmt.Println(analysis.Explanation)
	}
}

func printScenarioLine(name string, m domain.MetricsResult) {
	irr := "unreliable"
	if m.IRR.Reliable() {
		irr = fmt.Sprintf("%.2f%%", m.IRR.RatePct)
	}
	payback := "not recovered"
	if m.Payback.Recovered {
		payback = fmt.Sprintf("%.1f months", m.Payback.Months)
	}
	fmt.Printf("%-10s %11.2f%% %14.2f %14s %14s\n", name, m.ROIPct, m.NPV, irr, payback)
}
