package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mockmate/mockmate/internal/questions"
)

// getQuestions handles GET /api/v1/questions[?count=&category=&random=].
func (s *Server) getQuestions(w http.ResponseWriter, r *http.Request) {
	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid count: "+v)
			return
		}
		count = n
	}
	category := r.URL.Query().Get("category")
	random := r.URL.Query().Get("random") == "true"

	qs := questions.Select(count, category, random)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"questions":      qs,
		"totalAvailable": len(questions.All()),
		"categories":     questions.Categories(),
	})
}

// getQuestion handles GET /api/v1/questions/{id}.
func (s *Server) getQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	q, ok := questions.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "question not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"question": q,
	})
}
