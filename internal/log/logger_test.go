package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	logger.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("expected msg %q, got %v", "test message", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("expected key=value, got %v", entry["key"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatText, Output: &buf})

	logger.Info("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected text output to contain message, got %q", buf.String())
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatJSON, Output: &buf})

	logger.Info("filtered")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("emitted")
	if buf.Len() == 0 {
		t.Error("warn should be emitted at warn level")
	}
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	logger := New(nil)
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFromEnv_Debug(t *testing.T) {
	t.Setenv("SWEETPAY_DEBUG", "1")
	t.Setenv("SWEETPAY_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := FromEnv()
	if cfg.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Level)
	}
	if !cfg.AddSource {
		t.Error("expected AddSource with SWEETPAY_DEBUG")
	}
}

func TestFromEnv_LevelPrecedence(t *testing.T) {
	t.Setenv("SWEETPAY_DEBUG", "")
	t.Setenv("SWEETPAY_LOG_LEVEL", "trace")
	t.Setenv("LOG_LEVEL", "error")

	cfg := FromEnv()
	if cfg.Level != "trace" {
		t.Errorf("SWEETPAY_LOG_LEVEL should take precedence, got %q", cfg.Level)
	}
}

func TestSanitizeAPIKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"NNq7Rcnb8y8jGTsU", "...GTsU"},
		{"abcd", "[REDACTED]"},
		{"", "[REDACTED]"},
	}

	for _, tt := range tests {
		if got := SanitizeAPIKey(tt.input); got != tt.want {
			t.Errorf("SanitizeAPIKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrace_OnlyAtTraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: "debug", Format: FormatJSON, Output: &buf})
	Trace(logger, "body dump")
	if buf.Len() != 0 {
		t.Errorf("trace should be filtered at debug level, got %q", buf.String())
	}

	logger = New(&Config{Level: "trace", Format: FormatJSON, Output: &buf})
	Trace(logger, "body dump", slog.String("body", "{}"))
	if !strings.Contains(buf.String(), "body dump") {
		t.Error("trace should be emitted at trace level")
	}
}
