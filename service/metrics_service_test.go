package service

import (
	"errors"
	"testing"

	"roi-agent/domain"
	"roi-agent/repository"
)

type MockCalculationRepository struct {
	SaveCalled bool
	ForceError bool
}

func (m *MockCalculationRepository) Save(
	input domain.ProjectInput,
	result domain.ScenarioSet,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("save error")
	}
	return nil
}

func (m *MockCalculationRepository) Recent(limit int) []domain.ScenarioSet {
	return nil
}

func validInput() domain.ProjectInput {
	return domain.ProjectInput{
		InitialInvestment:    150000,
		DiscountRate:         10,
		DurationMonths:       24,
		AnnualRevenue:        75000,
		AnnualOperatingCosts: 15000,
		AnnualMaintenance:    5000,
		BestCaseMultiplier:   1.3,
		WorstCaseMultiplier:  0.7,
	}
}

func TestComputeScenarios_OK(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewMetricsService(mockRepo, repository.NewMockCache())

	result, err := service.ComputeScenarios(validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Expected.CashFlows) != 25 {
		t.Errorf("expected 25 cash flows, got %d", len(result.Expected.CashFlows))
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestComputeScenarios_SaveErrorIsNotFatal(t *testing.T) {

	mockRepo := &MockCalculationRepository{ForceError: true}
	service := NewMetricsService(mockRepo, repository.NewMockCache())

	_, err := service.ComputeScenarios(validInput())

	if err != nil {
		t.Fatalf("save failure must not fail the calculation: %v", err)
	}
}

func TestComputeScenarios_CacheHit(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	cache := repository.NewMockCache()
	service := NewMetricsService(mockRepo, cache)

	first, err := service.ComputeScenarios(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.Data) != 1 {
		t.Fatalf("expected one cache entry, got %d", len(cache.Data))
	}

	second, err := service.ComputeScenarios(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Expected.ROIPct != second.Expected.ROIPct {
		t.Errorf("cached result differs from computed result")
	}
}

func TestComputeScenarios_InvalidInvestment(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := NewMetricsService(mockRepo, repository.NewMockCache())

	input := validInput()
	input.InitialInvestment = -1

	_, err := service.ComputeScenarios(input)

	if !errors.Is(err, ErrInvalidInvestment) {
		t.Errorf("expected ErrInvalidInvestment, got %v", err)
	}
	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestComputeScenarios_InvalidDuration(t *testing.T) {

	service := NewMetricsService(&MockCalculationRepository{}, repository.NewMockCache())

	input := validInput()
	input.DurationMonths = 0

	if _, err := service.ComputeScenarios(input); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}

	input.DurationMonths = MaxDurationMonths + 1
	if _, err := service.ComputeScenarios(input); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestComputeScenarios_InvalidMultiplier(t *testing.T) {

	service := NewMetricsService(&MockCalculationRepository{}, repository.NewMockCache())

	input := validInput()
	input.WorstCaseMultiplier = 0

	if _, err := service.ComputeScenarios(input); !errors.Is(err, ErrInvalidMultiplier) {
		t.Errorf("expected ErrInvalidMultiplier, got %v", err)
	}
}

func TestComputeScenarios_InvalidDiscountRate(t *testing.T) {

	service := NewMetricsService(&MockCalculationRepository{}, repository.NewMockCache())

	input := validInput()
	input.DiscountRate = -5

	if _, err := service.ComputeScenarios(input); !errors.Is(err, ErrInvalidDiscount) {
		t.Errorf("expected ErrInvalidDiscount, got %v", err)
	}
}
