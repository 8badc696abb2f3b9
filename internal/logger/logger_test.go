package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("expected json format")
	}
	if ParseFormat("text") != FormatText {
		t.Error("expected text format")
	}
	if ParseFormat("") != FormatText {
		t.Error("expected text as default")
	}
}

func TestNewWithFileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "lanbridge.log")

	log, err := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		File: FileConfig{
			Enabled:   true,
			Path:      path,
			MaxSizeMB: 1,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer log.Shutdown()

	log.Info("transfer started", "files", 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "transfer started") {
		t.Errorf("expected log entry in file, got %q", data)
	}
}

func TestNewFileWithoutPath(t *testing.T) {
	if _, err := New(Config{File: FileConfig{Enabled: true}}); err == nil {
		t.Error("expected error when file output has no path")
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	log.With("k", "v").Error("also ignored")
	if err := log.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
