package repository

import (
	"sync"

	"roi-agent/domain"
)

const defaultHistorySize = 100

type calculationRecord struct {
	input  domain.ProjectInput
	result domain.ScenarioSet
}

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository holding a bounded history of recent calculations.
type CalculationRepositoryMemory struct {
	mu      sync.Mutex
	maxSize int
	data    []calculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		maxSize: defaultHistorySize,
		data:    []calculationRecord{},
	}
}

// Save stores the calculation, evicting the oldest entry when full.
func (r *CalculationRepositoryMemory) Save(
	input domain.ProjectInput,
	result domain.ScenarioSet,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, calculationRecord{input: input, result: result})
	if len(r.data) > r.maxSize {
		r.data = r.data[1:]
	}
	return nil
}

// Recent returns up to limit results, newest first.
func (r *CalculationRepositoryMemory) Recent(limit int) []domain.ScenarioSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.ScenarioSet, 0, limit)
	for i := len(r.data) - 1; i >= len(r.data)-limit; i-- {
		out = append(out, r.data[i].result)
	}
	return out
}
