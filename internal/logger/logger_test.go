package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"loud", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "turntable.log")

	log, closeFn, err := Init(Config{Level: "info", File: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	log.Debug("hidden")
	log.Info("track loaded", zap.String("title", "Spin"))
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), data)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "track loaded" || rec["title"] != "Spin" || rec["level"] != "info" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestInit_EmptyPath(t *testing.T) {
	if _, _, err := Init(Config{}); err == nil {
		t.Error("expected error for empty path")
	}
}
