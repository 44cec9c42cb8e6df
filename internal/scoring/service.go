package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mockmate/mockmate/internal/metrics"
)

const (
	maxAnswerLen     = 50000
	maxTranscriptLen = 100000
)

// ErrValidation marks client-caused input errors. Validation happens before
// any external call is made.
var ErrValidation = errors.New("validation failed")

// Generator produces raw model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Relay submits a finished score to the leaderboard. Implementations are
// best-effort collaborators: a relay failure never fails the scoring call.
type Relay interface {
	Submit(ctx context.Context, username string, score int) error
}

// EventSink receives score-recorded notifications.
type EventSink interface {
	ScoreRecorded(username, mode string, total int, grade string) error
}

// Service orchestrates the scoring pipeline: validate, build prompt,
// generate, normalize, relay. One service handles both entry points,
// parametrized by scoring profile.
type Service struct {
	llm    Generator
	relay  Relay
	events EventSink
	logger *slog.Logger
}

func NewService(llm Generator, relay Relay, events EventSink, logger *slog.Logger) *Service {
	return &Service{llm: llm, relay: relay, events: events, logger: logger}
}

// ScoreAnswer scores a question+answer pair against the answer profile.
func (s *Service) ScoreAnswer(ctx context.Context, req AnswerRequest) (*AnswerResult, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("%w: question is required and must be a non-empty string", ErrValidation)
	}
	if strings.TrimSpace(req.Answer) == "" {
		return nil, fmt.Errorf("%w: answer is required and must be a non-empty string", ErrValidation)
	}
	if len(req.Answer) > maxAnswerLen {
		return nil, fmt.Errorf("%w: answer is too long (max %d characters)", ErrValidation, maxAnswerLen)
	}

	prompt := BuildAnswerPrompt(AnswerProfile, req.Question, req.Answer, req.ExpectedPoints)
	rec, err := s.score(ctx, prompt, AnswerProfile, req.Username)
	if err != nil {
		return nil, err
	}

	return &AnswerResult{
		ScoreRecord:          rec,
		Question:             req.Question,
		Answer:               truncate(req.Answer, 200),
		QuestionID:           req.QuestionID,
		Username:             req.Username,
		LeaderboardSubmitted: req.Username != "",
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ScoreTranscript scores a freeform transcript against the transcript profile.
func (s *Service) ScoreTranscript(ctx context.Context, req TranscriptRequest) (*TranscriptResult, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, fmt.Errorf("%w: transcript cannot be empty", ErrValidation)
	}
	if len(req.Transcript) > maxTranscriptLen {
		return nil, fmt.Errorf("%w: transcript is too long (max %d characters)", ErrValidation, maxTranscriptLen)
	}

	prompt := BuildTranscriptPrompt(TranscriptProfile, req.Transcript)
	rec, err := s.score(ctx, prompt, TranscriptProfile, req.Username)
	if err != nil {
		return nil, err
	}

	return &TranscriptResult{
		ScoreRecord:          rec,
		Username:             req.Username,
		LeaderboardSubmitted: req.Username != "",
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// score runs the shared generate→normalize→relay tail of both entry points.
func (s *Service) score(ctx context.Context, prompt string, profile Profile, username string) (ScoreRecord, error) {
	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		metrics.IncUpstreamError()
		return ScoreRecord{}, fmt.Errorf("generate score: %w", err)
	}

	rec := Normalize(raw, profile)
	if rec.Degraded {
		metrics.IncExtraction("fallback")
		s.logger.Warn("structured extraction failed, degraded to heuristic scoring",
			"profile", profile.Name,
			"total_score", rec.TotalScore,
			"raw_len", len(raw),
		)
	} else {
		metrics.IncExtraction("strict")
	}
	metrics.IncScore(profile.Name)

	s.logger.Info("submission scored",
		"profile", profile.Name,
		"total_score", rec.TotalScore,
		"grade", rec.Grade,
		"degraded", rec.Degraded,
	)

	s.submitToLeaderboard(ctx, username, profile.Name, rec)
	return rec, nil
}

// submitToLeaderboard is the best-effort relay: failures are logged and
// counted, never propagated to the scoring response.
func (s *Service) submitToLeaderboard(ctx context.Context, username, mode string, rec ScoreRecord) {
	if username == "" {
		return
	}

	if s.relay != nil {
		if err := s.relay.Submit(ctx, username, rec.TotalScore); err != nil {
			metrics.IncRelayFailure()
			s.logger.Error("leaderboard relay failed",
				"username", username,
				"score", rec.TotalScore,
				"error", err,
			)
		}
	}

	if s.events != nil {
		if err := s.events.ScoreRecorded(username, mode, rec.TotalScore, rec.Grade); err != nil {
			s.logger.Warn("score event publish failed", "username", username, "error", err)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
