package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/mockmate/mockmate/internal/analysis"
)

type analyzeRequest struct {
	Transcript   string `json:"transcript"`
	AnalysisType string `json:"analysisType"`
	CustomPrompt string `json:"customPrompt"`
}

// analyzeTranscript handles POST /api/v1/analyze/transcript.
func (s *Server) analyzeTranscript(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.AnalysisType == "" {
		req.AnalysisType = "summary"
	}

	result, err := s.analyzer.Analyze(r.Context(), req.Transcript, req.AnalysisType, req.CustomPrompt)
	if err != nil {
		if errors.Is(err, analysis.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("transcript analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"result":       result,
		"analysisType": req.AnalysisType,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
