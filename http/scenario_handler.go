package http

import (
	"encoding/json"
	"net/http"

	"roi-agent/domain"
	"roi-agent/service"
)

type ScenarioHandler struct {
	service *service.MetricsService
}

func NewScenarioHandler(service *service.MetricsService) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

// ComputeScenarios handles POST /project/metrics.
func (h *ScenarioHandler) ComputeScenarios(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputeScenarios(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
