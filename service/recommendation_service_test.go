package service

import (
	"testing"

	"roi-agent/config"
	"roi-agent/domain"
	"roi-agent/repository"
)

func newTestRecommendationService() *RecommendationService {
	metrics := NewMetricsService(&MockCalculationRepository{}, repository.NewMockCache())
	return NewRecommendationService(metrics, config.Default().Thresholds)
}

func TestAnalyze_UnprofitableProject(t *testing.T) {

	service := newTestRecommendationService()

	// The reference project never breaks even within 24 months.
	result, err := service.Analyze(validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Verdict != "not viable" {
		t.Errorf("expected verdict 'not viable', got %q", result.Verdict)
	}

	if !hasRule(result.Recommendations, "payback_failed") {
		t.Errorf("expected payback_failed recommendation")
	}
	if result.Explanation == "" {
		t.Errorf("expected a fallback explanation")
	}
}

func TestAnalyze_ProfitableProject(t *testing.T) {

	service := newTestRecommendationService()

	input := validInput()
	input.AnnualRevenue = 200000

	result, err := service.Analyze(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Verdict == "not viable" {
		t.Errorf("profitable project must not be 'not viable'")
	}
	if !hasRule(result.Recommendations, "payback_ok") {
		t.Errorf("expected payback_ok recommendation")
	}
	if !hasRule(result.Recommendations, "npv_positive") {
		t.Errorf("expected npv_positive recommendation")
	}
}

func TestAnalyze_InvalidInputPropagates(t *testing.T) {

	service := newTestRecommendationService()

	input := validInput()
	input.DurationMonths = -1

	if _, err := service.Analyze(input); err == nil {
		t.Errorf("expected validation error")
	}
}

func hasRule(recs []domain.Recommendation, rule string) bool {
	for _, rec := range recs {
		if rec.Rule == rule {
			return true
		}
	}
	return false
}
