package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	LogLevel     string
	GeminiAPIKey string
	GeminiModel  string
	NatsURL      string
	NatsToken    string
	RedisAddr    string
	BaseURL      string
}

func Load() Config {
	return Config{
		Port:         envInt("MOCKMATE_PORT", 8900),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		GeminiAPIKey: envStr("GEMINI_API_KEY", envStr("GOOGLE_AI_API_KEY", "")),
		GeminiModel:  envStr("MOCKMATE_MODEL", "gemini-1.5-flash"),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		RedisAddr:    envStr("REDIS_ADDR", ""),
		BaseURL:      envStr("BASE_URL", "http://localhost:8900"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
