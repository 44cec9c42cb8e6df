package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mockmate/mockmate/internal/cache"
	"github.com/mockmate/mockmate/internal/metrics"
	"github.com/mockmate/mockmate/internal/scoring"
	"github.com/mockmate/mockmate/internal/store"
)

// Scorer is the scoring service boundary.
type Scorer interface {
	ScoreAnswer(ctx context.Context, req scoring.AnswerRequest) (*scoring.AnswerResult, error)
	ScoreTranscript(ctx context.Context, req scoring.TranscriptRequest) (*scoring.TranscriptResult, error)
}

// Analyzer is the freeform transcript analysis boundary.
type Analyzer interface {
	Analyze(ctx context.Context, transcript, analysisType, customPrompt string) (string, error)
}

// LeaderboardStore is the persistence boundary for leaderboard rows.
type LeaderboardStore interface {
	AddEntry(ctx context.Context, username string, score int) (store.Entry, error)
	ListEntries(ctx context.Context, username string) ([]store.Entry, error)
}

type Server struct {
	router      *chi.Mux
	port        int
	logger      *slog.Logger
	scorer      Scorer
	analyzer    Analyzer
	leaderboard LeaderboardStore
	cache       *cache.Cache
}

// NewServer wires the HTTP surface. The cache is optional and may be nil.
func NewServer(port int, scorer Scorer, analyzer Analyzer, leaderboard LeaderboardStore, c *cache.Cache, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:      router,
		port:        port,
		logger:      logger,
		scorer:      scorer,
		analyzer:    analyzer,
		leaderboard: leaderboard,
		cache:       c,
	}

	router.Get("/health", s.health)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/score/answer", s.scoreAnswer)
		r.Get("/score/answer", s.describeAnswerScoring)
		r.Post("/score/transcript", s.scoreTranscript)
		r.Get("/score/transcript", s.describeTranscriptScoring)
		r.Post("/analyze/transcript", s.analyzeTranscript)
		r.Get("/leaderboard", s.getLeaderboard)
		r.Post("/leaderboard", s.postLeaderboard)
		r.Get("/questions", s.getQuestions)
		r.Get("/questions/{id}", s.getQuestion)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes a request body, writing a 400 and returning the error
// when the payload is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return err
	}
	return nil
}
