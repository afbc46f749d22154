package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	log.Component("session").Info("session created", "live", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "session created" || entry["component"] != "session" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "text")

	log.Debug("scored", "hotspots", 2)

	if !strings.Contains(buf.String(), "msg=scored") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "text")

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn, got %q", buf.String())
	}

	log.SetLevel("debug")
	if log.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", log.Level())
	}

	child := log.Component("server")
	child.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("child logger should follow the new level")
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing happens")
	if log.Level() != slog.LevelError {
		t.Errorf("expected error level, got %v", log.Level())
	}
}
