package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "limitwarden.log")
	Setup("info", path)

	slog.Info("hello from the audit", "findings", 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "hello from the audit") {
		t.Errorf("log line missing from file: %q", string(data))
	}
	if !strings.Contains(string(data), "findings=3") {
		t.Errorf("attributes missing from file: %q", string(data))
	}
}

func TestSetupLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limitwarden.log")
	Setup("warn", path)

	slog.Info("too quiet")
	slog.Warn("loud enough")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "too quiet") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Error("warn line should be written")
	}
}

func TestSetupAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limitwarden.log")
	Setup("info", path)
	slog.Info("first run")
	Setup("info", path)
	slog.Info("second run")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("expected both runs in file: %q", string(data))
	}
}
