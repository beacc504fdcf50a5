package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"roi-agent/domain"
	"roi-agent/logging"
	"roi-agent/service"
)

type AnalysisHandler struct {
	service *service.RecommendationService
}

func NewAnalysisHandler(service *service.RecommendationService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze handles POST /project/analyze.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logging.Sugar.Warnw("failed to decode analyze request", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Analyze(input)
	if err != nil {
		logging.Sugar.Warnw("analysis rejected", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a failed encode cannot leave a
	// half-written 200 response.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		logging.Sugar.Errorw("failed to encode analysis response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logging.Sugar.Warnw("failed to write analysis response", "error", err)
	}
}
