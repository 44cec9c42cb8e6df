package api

import (
	"errors"
	"net/http"

	"github.com/mockmate/mockmate/internal/scoring"
)

type answerResponse struct {
	Success bool `json:"success"`
	*scoring.AnswerResult
}

type transcriptResponse struct {
	Success bool `json:"success"`
	*scoring.TranscriptResult
}

// scoreAnswer handles POST /api/v1/score/answer.
func (s *Server) scoreAnswer(w http.ResponseWriter, r *http.Request) {
	var req scoring.AnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	result, err := s.scorer.ScoreAnswer(r.Context(), req)
	if err != nil {
		s.writeScoringError(w, err, "failed to score question and answer")
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{Success: true, AnswerResult: result})
}

// scoreTranscript handles POST /api/v1/score/transcript.
func (s *Server) scoreTranscript(w http.ResponseWriter, r *http.Request) {
	var req scoring.TranscriptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	result, err := s.scorer.ScoreTranscript(r.Context(), req)
	if err != nil {
		s.writeScoringError(w, err, "failed to calculate score")
		return
	}

	writeJSON(w, http.StatusOK, transcriptResponse{Success: true, TranscriptResult: result})
}

// writeScoringError maps pipeline errors onto status codes: client-caused
// validation failures are 400s, everything else (missing credential,
// upstream failure) is a 500 with the diagnostic message attached.
func (s *Server) writeScoringError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, scoring.ErrValidation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("scoring failed", "error", err)
	msg := fallback
	if err != nil {
		msg = err.Error()
	}
	writeError(w, http.StatusInternalServerError, msg)
}

// describeAnswerScoring handles GET /api/v1/score/answer.
func (s *Server) describeAnswerScoring(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Question-Answer scoring API is running",
		"description": "POST a question and answer to get a detailed score out of 5000",
		"scoringCriteria": map[string]string{
			"contentQuality":  "1500 points - Relevance, examples, knowledge, insights",
			"communication":   "1000 points - Clarity, structure, vocabulary, tone",
			"depth":           "1000 points - Thoroughness, detail, analysis, key points",
			"professionalism": "750 points - Professional tone, confidence, focus",
			"impact":          "750 points - Engagement, authenticity, problem-solving, impression",
		},
		"expectedFields": map[string]string{
			"question":       "The interview question asked",
			"answer":         "The candidate's response",
			"expectedPoints": "Optional array of key points to look for",
			"questionId":     "Optional ID if using stock questions",
			"username":       "Optional identity for leaderboard attribution",
		},
	})
}

// describeTranscriptScoring handles GET /api/v1/score/transcript.
func (s *Server) describeTranscriptScoring(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Transcript scoring API is running",
		"description": "POST a transcript to get a score out of 5000",
		"scoringCriteria": map[string]string{
			"communicationSkills": "1000 points - Clarity, vocabulary, articulation",
			"contentQuality":      "1000 points - Knowledge depth, relevance, insights",
			"engagement":          "1000 points - Participation, questions, responses",
			"professionalism":     "1000 points - Tone, respect, conduct",
			"leadership":          "1000 points - Initiative, direction, leadership",
		},
	})
}
