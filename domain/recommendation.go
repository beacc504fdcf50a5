package domain

// Severity classifies a recommendation.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNeutral  Severity = "neutral"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Recommendation is one human-readable finding derived from threshold rules.
type Recommendation struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// AnalysisResult is the full analysis of a project: the scenario metrics,
// the threshold-rule recommendations, an overall verdict and an optional
// narrative explanation.
type AnalysisResult struct {
	Scenarios       ScenarioSet      `json:"scenarios"`
	Recommendations []Recommendation `json:"recommendations"`
	Verdict         string           `json:"verdict"`
	Explanation     string           `json:"explanation,omitempty"`
}
