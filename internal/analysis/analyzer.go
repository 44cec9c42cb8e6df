// Package analysis provides freeform transcript analysis: summaries,
// sentiment, keywords and similar single-shot model passes that return
// unstructured text rather than a score.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const maxTranscriptLen = 100000

var ErrValidation = errors.New("validation failed")

// Prompt templates per analysis type. The transcript is appended verbatim.
var analysisPrompts = map[string]string{
	"summary":     "Provide a concise summary of this transcript:\n%s",
	"sentiment":   "Analyze the sentiment and emotional tone of this transcript:\n%s",
	"keywords":    "Extract the key topics, keywords, and important phrases from this transcript:\n%s",
	"actionItems": "Identify any action items, tasks, or decisions mentioned in this transcript:\n%s",
	"questions":   "List all questions asked in this transcript and categorize them:\n%s",
	"insights":    "Provide deep insights and analysis of the main themes in this transcript:\n%s",
}

// Generator produces raw model text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Analyzer struct {
	llm    Generator
	logger *slog.Logger
}

func New(llm Generator, logger *slog.Logger) *Analyzer {
	return &Analyzer{llm: llm, logger: logger}
}

// Types returns the supported named analysis types.
func Types() []string {
	return []string{"summary", "sentiment", "keywords", "actionItems", "questions", "insights"}
}

// Analyze runs one analysis pass over a transcript. A custom prompt takes
// precedence over the named analysis type; an unknown type falls back to
// summary.
func (a *Analyzer) Analyze(ctx context.Context, transcript, analysisType, customPrompt string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("%w: transcript cannot be empty", ErrValidation)
	}
	if len(transcript) > maxTranscriptLen {
		return "", fmt.Errorf("%w: transcript is too long (max %d characters)", ErrValidation, maxTranscriptLen)
	}

	var prompt string
	switch {
	case customPrompt != "":
		prompt = customPrompt + "\n\nTranscript:\n" + transcript
	default:
		tmpl, ok := analysisPrompts[analysisType]
		if !ok {
			tmpl = analysisPrompts["summary"]
		}
		prompt = fmt.Sprintf(tmpl, transcript)
	}

	a.logger.Info("analyzing transcript",
		"analysis_type", analysisType,
		"custom_prompt", customPrompt != "",
		"transcript_len", len(transcript),
	)

	result, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("analyze transcript: %w", err)
	}
	return result, nil
}
