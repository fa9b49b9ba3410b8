package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Output != "" || cfg.Annotate {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `output: json
log_level: debug
annotate: true
exclude_namespaces:
  - kube-system
  - kube-public
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "json" {
		t.Errorf("output: got %q", cfg.Output)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level: got %q", cfg.LogLevel)
	}
	if !cfg.Annotate {
		t.Error("annotate: expected true")
	}
	if len(cfg.ExcludeNamespaces) != 2 || cfg.ExcludeNamespaces[0] != "kube-system" {
		t.Errorf("exclude_namespaces: got %v", cfg.ExcludeNamespaces)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output: [oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
