package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewJSONLoggerEmitsJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hello", slog.String("server", "http://localhost:8096"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "hello" || entry["server"] != "http://localhost:8096" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, Options{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info line should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn line missing, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
