package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("MODEL_NAME", "")

	cfg := Load()

	if cfg.Environment != "development" {
		t.Errorf("Expected environment 'development', got %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("Expected log level info, got %v", cfg.LogLevel)
	}
	if cfg.ModelName != DefaultModelName {
		t.Errorf("Expected model %q, got %q", DefaultModelName, cfg.ModelName)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MODEL_NAME", "gemini-2.5-pro")

	cfg := Load()

	if cfg.Environment != "production" {
		t.Errorf("Expected environment 'production', got %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("Expected log level debug, got %v", cfg.LogLevel)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got %q", cfg.GeminiAPIKey)
	}
	if cfg.ModelName != "gemini-2.5-pro" {
		t.Errorf("Expected model 'gemini-2.5-pro', got %q", cfg.ModelName)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.expected {
			t.Errorf("parseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
