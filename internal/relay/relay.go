// Package relay submits finished scores to the leaderboard API over HTTP.
// The scoring service calls it best-effort after a score is computed.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type submission struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Submit posts a leaderboard entry. Callers treat failures as best-effort.
func (c *Client) Submit(ctx context.Context, username string, score int) error {
	body, err := json.Marshal(submission{Username: username, Score: score})
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	url := c.baseURL + "/api/v1/leaderboard"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("leaderboard returned %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}
