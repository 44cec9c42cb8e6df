//go:build integration

package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func setupTestCache(t *testing.T) *Cache {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := New(context.Background(), addr, logger)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		c.Close()
	})
	return c
}

func TestIntegration_SetGetInvalidate(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()
	key := "it:" + uuid.New().String()

	type payload struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	if err := c.Set(ctx, key, payload{Name: "ada", Score: 4200}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	if err := c.Get(ctx, key, &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "ada" || got.Score != 4200 {
		t.Errorf("unexpected value: %+v", got)
	}

	if err := c.Invalidate(ctx, key); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if err := c.Get(ctx, key, &got); err == nil {
		t.Error("expected miss after invalidate")
	}
}

func TestIntegration_FindAndCache(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()
	key := "it:" + uuid.New().String()

	calls := 0
	fetch := func(ctx context.Context) ([]int, error) {
		calls++
		return []int{50, 30, 10}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := FindAndCache(ctx, c, key, time.Minute, fetch)
		if err != nil {
			t.Fatalf("find and cache: %v", err)
		}
		if len(got) != 3 || got[0] != 50 {
			t.Errorf("unexpected value: %v", got)
		}
	}

	if calls != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", calls)
	}

	c.Invalidate(ctx, key)
}
