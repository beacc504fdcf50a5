package repository

import "roi-agent/domain"

// CalculationRepository stores finished scenario calculations.
type CalculationRepository interface {
	Save(input domain.ProjectInput, result domain.ScenarioSet) error
	Recent(limit int) []domain.ScenarioSet
}
