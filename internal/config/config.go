// Package config handles the optional limitwarden config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds file-level defaults. Flags set explicitly on the command
// line always win over these values.
type Config struct {
	Output            string   `yaml:"output"`
	LogLevel          string   `yaml:"log_level"`
	Annotate          bool     `yaml:"annotate"`
	ExcludeNamespaces []string `yaml:"exclude_namespaces"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".limitwarden", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is not an error and yields an empty config; a malformed file is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
