package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qtermstab.yaml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
trials: 32
seed: 7
log_level: debug
save_path: /tmp/bell.txt
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := DefaultConfig()
	want.Trials = 32
	want.Seed = 7
	want.LogLevel = "debug"
	want.SavePath = "/tmp/bell.txt"
	if cfg != want {
		t.Fatalf("LoadConfig = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"zero trials", "trials: 0\n"},
		{"negative workers", "workers: -1\n"},
		{"no qubits", "qubits: 0\n"},
		{"bad level", "log_level: loud\n"},
		{"syntax", "trials: [1\n"},
		{"wrong type", "trials: many\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.text)); err == nil {
				t.Fatalf("LoadConfig(%q) succeeded", tt.text)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn", false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug is enabled at warn level")
	}

	logger, err = newLogger("warn", true)
	if err != nil {
		t.Fatalf("newLogger verbose: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose did not enable debug")
	}

	if _, err := newLogger("loud", false); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
