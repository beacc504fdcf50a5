package engine

import (
	"math"
	"testing"

	"roi-agent/domain"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestProjectCashFlows_Length(t *testing.T) {

	for _, duration := range []int{0, 1, 12, 24, 120} {
		in := domain.ProjectInput{
			InitialInvestment: 10000,
			DurationMonths:    duration,
			AnnualRevenue:     12000,
		}

		flows := ProjectCashFlows(in)

		if len(flows) != duration+1 {
			t.Errorf("duration %d: expected length %d, got %d", duration, duration+1, len(flows))
		}
	}
}

func TestProjectCashFlows_ZeroDuration(t *testing.T) {

	in := domain.ProjectInput{InitialInvestment: 5000}

	flows := ProjectCashFlows(in)

	if len(flows) != 1 {
		t.Fatalf("expected length 1, got %d", len(flows))
	}
	if flows[0] != -5000 {
		t.Errorf("expected -5000 at index 0, got %.2f", flows[0])
	}
	if flows.TotalReturn() != 0 {
		t.Errorf("expected zero total return, got %.2f", flows.TotalReturn())
	}
}

func TestProjectCashFlows_ConstantMonthlyFlow(t *testing.T) {

	in := domain.ProjectInput{
		InitialInvestment:    150000,
		DurationMonths:       24,
		AnnualRevenue:        75000,
		AnnualOperatingCosts: 15000,
		AnnualMaintenance:    5000,
	}

	flows := ProjectCashFlows(in)

	// 75000/12 - 20000/12 per month
	expected := 4583.3333
	for m := 1; m <= 24; m++ {
		if !almostEqual(flows[m], expected, 0.01) {
			t.Fatalf("month %d: expected %.4f, got %.4f", m, expected, flows[m])
		}
	}
	if !almostEqual(flows.TotalReturn(), 110000, 0.01) {
		t.Errorf("expected total return 110000, got %.2f", flows.TotalReturn())
	}
}

func TestProjectCashFlows_GrowthCompoundsMonthly(t *testing.T) {

	in := domain.ProjectInput{
		InitialInvestment:   10000,
		DurationMonths:      13,
		AnnualRevenue:       12000,
		AnnualRevenueGrowth: 12,
	}

	flows := ProjectCashFlows(in)

	for m := 2; m <= 13; m++ {
		if flows[m] <= flows[m-1] {
			t.Errorf("month %d: expected growing flows, got %.4f after %.4f", m, flows[m], flows[m-1])
		}
	}

	// Twelve growth steps compound back to the annual rate: the flow in
	// month 13 carries a factor of (1+g)^12 = 1.12 over month 1.
	if !almostEqual(flows[13], flows[1]*1.12, 0.01) {
		t.Errorf("expected %.4f in month 13, got %.4f", flows[1]*1.12, flows[13])
	}
}

func TestProjectCashFlows_DecliningRevenue(t *testing.T) {

	in := domain.ProjectInput{
		InitialInvestment:   10000,
		DurationMonths:      12,
		AnnualRevenue:       12000,
		AnnualRevenueGrowth: -20,
	}

	flows := ProjectCashFlows(in)

	for m := 2; m <= 12; m++ {
		if flows[m] >= flows[m-1] {
			t.Errorf("month %d: expected declining flows, got %.4f after %.4f", m, flows[m], flows[m-1])
		}
	}
}
