package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	expected := map[string]interface{}{
		"service":     "test-service",
		"version":     "1.0.0",
		"environment": "test",
		"msg":         "test message",
		"level":       "INFO",
		"key":         "value",
		"number":      float64(42),
	}
	for k, v := range expected {
		if logEntry[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, logEntry[k])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn line should be written")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	if requestID, ok := RequestIDFromContext(ctx); !ok || requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request id for bare context")
	}
}

func TestFromContextAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), 42)
	FromContext(ctx).Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry[AttrKeyRequestID] != "req-1" {
		t.Errorf("Expected request_id=req-1, got %v", entry[AttrKeyRequestID])
	}
	if entry[AttrKeyUserID] != float64(42) {
		t.Errorf("Expected user_id=42, got %v", entry[AttrKeyUserID])
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == "" || a == b {
		t.Errorf("Expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service name %s, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.LogLevel() != slog.LevelInfo {
		t.Errorf("Expected info level, got %v", config.LogLevel())
	}
	if config.IsJSON() {
		t.Error("Expected text format by default")
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
