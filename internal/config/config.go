package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds persistent CLI configuration loaded from
// ~/.secretval/config.yaml.
type Config struct {
	// ServicePrefix is prepended to every service identifier given on
	// the command line, e.g. "com.example." turns "token" into
	// "com.example.token".
	ServicePrefix string `yaml:"service_prefix"`
	// AuditLog is the path of the append-only audit log. Empty disables
	// auditing.
	AuditLog string `yaml:"audit_log"`
}

// DefaultPath returns the default config file path: ~/.secretval/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".secretval", "config.yaml")
}

// Load reads a YAML config file from path. If the file does not exist,
// it returns an empty Config and no error. An empty or all-comment file
// also returns an empty Config with no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
