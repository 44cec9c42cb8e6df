package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mockmate/mockmate/internal/analysis"
	"github.com/mockmate/mockmate/internal/api"
	"github.com/mockmate/mockmate/internal/cache"
	"github.com/mockmate/mockmate/internal/config"
	"github.com/mockmate/mockmate/internal/events"
	"github.com/mockmate/mockmate/internal/gemini"
	"github.com/mockmate/mockmate/internal/relay"
	"github.com/mockmate/mockmate/internal/scoring"
	"github.com/mockmate/mockmate/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("mockmate starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	// Gemini client
	llm, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Error("GEMINI_API_KEY is required", "error", err)
		os.Exit(1)
	}
	slog.Info("gemini client ready", "model", cfg.GeminiModel)

	// NATS publisher (optional — scoring works without it, just no events)
	var sink scoring.EventSink
	if cfg.NatsURL != "" {
		pub, err := events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		sink = pub
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without score events")
	}

	// Redis cache (optional — leaderboard reads hit the database directly)
	var c *cache.Cache
	if cfg.RedisAddr != "" {
		c, err = cache.New(ctx, cfg.RedisAddr, slog.Default())
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer c.Close()
		slog.Info("redis connected", "addr", cfg.RedisAddr)
	} else {
		slog.Warn("redis not configured — leaderboard reads uncached")
	}

	// Scoring pipeline
	rel := relay.New(cfg.BaseURL)
	svc := scoring.NewService(llm, rel, sink, slog.Default())
	analyzer := analysis.New(llm, slog.Default())

	// HTTP API
	srv := api.NewServer(cfg.Port, svc, analyzer, db, c, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("mockmate ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("mockmate stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
