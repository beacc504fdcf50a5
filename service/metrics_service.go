package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"roi-agent/domain"
	"roi-agent/engine"
	"roi-agent/logging"
	"roi-agent/repository"
)

// Validation errors returned by ComputeScenarios. The engine itself never
// validates; everything that reaches it has been sanitized here.
var (
	ErrInvalidInvestment = errors.New("invalid initial investment")
	ErrInvalidDiscount   = errors.New("invalid discount rate")
	ErrInvalidDuration   = errors.New("invalid project duration")
	ErrInvalidRevenue    = errors.New("invalid annual revenue")
	ErrInvalidGrowth     = errors.New("invalid revenue growth rate")
	ErrInvalidCosts      = errors.New("invalid annual costs")
	ErrInvalidMultiplier = errors.New("invalid scenario multiplier")
)

type MetricsService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewMetricsService creates a new MetricsService with the given repository
// and cache.
func NewMetricsService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *MetricsService {
	return &MetricsService{repo: repo, cache: cache}
}

// ComputeScenarios validates the input, computes the expected/best/worst
// scenario metrics and records the calculation. Identical inputs are
// answered from the cache when one is configured.
func (s *MetricsService) ComputeScenarios(
	input domain.ProjectInput,
) (domain.ScenarioSet, error) {

	if err := validateInput(input); err != nil {
		return domain.ScenarioSet{}, err
	}

	key := cacheKey(input)
	if s.cache != nil {
		if raw, ok := s.cache.Get(key); ok {
			var cached domain.ScenarioSet
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			logging.Sugar.Warnw("discarding undecodable cache entry", "key", key)
		}
	}

	result := engine.ComputeScenarios(input)

	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(raw)); err != nil {
				logging.Sugar.Warnw("failed to cache calculation", "error", err)
			}
		}
	}

	// History is best effort; a failed save must not fail the request.
	if err := s.repo.Save(input, result); err != nil {
		logging.Sugar.Warnw("failed to save calculation", "error", err)
	}

	return result, nil
}

// Recent returns the most recent calculations, newest first.
func (s *MetricsService) Recent(limit int) []domain.ScenarioSet {
	return s.repo.Recent(limit)
}

func validateInput(input domain.ProjectInput) error {
	if input.InitialInvestment < 0 || input.InitialInvestment > MaxInvestment {
		return ErrInvalidInvestment
	}
	if input.DiscountRate < MinDiscountRate || input.DiscountRate > MaxDiscountRate {
		return ErrInvalidDiscount
	}
	if input.DurationMonths < MinDurationMonths || input.DurationMonths > MaxDurationMonths {
		return ErrInvalidDuration
	}
	if input.AnnualRevenue < 0 || input.AnnualRevenue > MaxAnnualRevenue {
		return ErrInvalidRevenue
	}
	if input.AnnualRevenueGrowth < MinGrowthRate || input.AnnualRevenueGrowth > MaxGrowthRate {
		return ErrInvalidGrowth
	}
	if input.AnnualOperatingCosts < 0 || input.AnnualOperatingCosts > MaxAnnualCosts {
		return ErrInvalidCosts
	}
	if input.AnnualMaintenance < 0 || input.AnnualMaintenance > MaxAnnualCosts {
		return ErrInvalidCosts
	}
	if input.BestCaseMultiplier <= 0 || input.BestCaseMultiplier > MaxCaseMultiplier {
		return fmt.Errorf("%w: best case must be in (0, %.0f]", ErrInvalidMultiplier, MaxCaseMultiplier)
	}
	if input.WorstCaseMultiplier <= 0 || input.WorstCaseMultiplier > MaxCaseMultiplier {
		return fmt.Errorf("%w: worst case must be in (0, %.0f]", ErrInvalidMultiplier, MaxCaseMultiplier)
	}
	return nil
}

// cacheKey derives a stable key from the canonical JSON of the input.
func cacheKey(input domain.ProjectInput) string {
	raw, _ := json.Marshal(input)
	sum := sha256.Sum256(raw)
	return "roi:scenarios:" + hex.EncodeToString(sum[:])
}
