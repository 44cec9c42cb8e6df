package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mockmate/mockmate/internal/scoring"
	"github.com/mockmate/mockmate/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeAnalyzer struct {
	result string
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _, _, _ string) (string, error) {
	return f.result, f.err
}

type fakeLeaderboard struct {
	entries []store.Entry
	listErr error
	addErr  error
	added   []store.Entry
}

func (f *fakeLeaderboard) AddEntry(_ context.Context, username string, score int) (store.Entry, error) {
	if f.addErr != nil {
		return store.Entry{}, f.addErr
	}
	e := store.Entry{Username: username, Score: score}
	f.added = append(f.added, e)
	return e, nil
}

func (f *fakeLeaderboard) ListEntries(_ context.Context, username string) ([]store.Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if username == "" {
		return f.entries, nil
	}
	var out []store.Entry
	for _, e := range f.entries {
		if e.Username == username {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestServer(gen *fakeGenerator, lb *fakeLeaderboard) *Server {
	svc := scoring.NewService(gen, nil, nil, discardLogger())
	return NewServer(8900, svc, &fakeAnalyzer{result: "a summary"}, lb, nil, discardLogger())
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, &fakeLeaderboard{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, &fakeLeaderboard{})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer(&fakeGenerator{}, &fakeLeaderboard{})

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
