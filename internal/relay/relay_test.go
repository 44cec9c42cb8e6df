package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmit_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/leaderboard" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %q", r.Method)
		}

		var sub submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Fatalf("decode submission: %v", err)
		}
		if sub.Username != "ada" || sub.Score != 4100 {
			t.Errorf("unexpected submission: %+v", sub)
		}

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New(server.URL)
	if err := c.Submit(context.Background(), "ada", 4100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmit_NonCreatedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"username and score are required"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.Submit(context.Background(), "", 0)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
}

func TestSubmit_ServerUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	if err := c.Submit(context.Background(), "ada", 100); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
