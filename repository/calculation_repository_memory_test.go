package repository

import (
	"testing"

	"roi-agent/domain"
)

func TestCalculationRepositoryMemory_SaveAndRecent(t *testing.T) {

	repo := NewCalculationRepositoryMemory()

	for i := 0; i < 3; i++ {
		set := domain.ScenarioSet{
			Expected: domain.MetricsResult{ROIPct: float64(i)},
		}
		if err := repo.Save(domain.ProjectInput{}, set); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	recent := repo.Recent(2)

	if len(recent) != 2 {
		t.Fatalf("expected 2 results, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Expected.ROIPct != 2 || recent[1].Expected.ROIPct != 1 {
		t.Errorf("unexpected order: %.0f, %.0f", recent[0].Expected.ROIPct, recent[1].Expected.ROIPct)
	}
}

func TestCalculationRepositoryMemory_EvictsOldest(t *testing.T) {

	repo := NewCalculationRepositoryMemory()

	for i := 0; i <= defaultHistorySize; i++ {
		set := domain.ScenarioSet{Expected: domain.MetricsResult{ROIPct: float64(i)}}
		if err := repo.Save(domain.ProjectInput{}, set); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	recent := repo.Recent(0)

	if len(recent) != defaultHistorySize {
		t.Fatalf("expected %d results, got %d", defaultHistorySize, len(recent))
	}
	// Entry 0 was evicted; the oldest remaining is entry 1.
	oldest := recent[len(recent)-1]
	if oldest.Expected.ROIPct != 1 {
		t.Errorf("expected oldest entry 1, got %.0f", oldest.Expected.ROIPct)
	}
}
