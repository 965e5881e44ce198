package config

import (
	"log/slog"
	"os"
	"strings"
)

const DefaultModelName = "gemini-2.5-flash"

type Config struct {
	Environment  string
	LogLevel     slog.Level
	GeminiAPIKey string
	ModelName    string
}

func Load() *Config {
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"), // optional; the mock client ignores it
		ModelName:    getEnv("MODEL_NAME", DefaultModelName),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
