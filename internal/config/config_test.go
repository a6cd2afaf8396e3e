package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `service_prefix: com.example.
audit_log: /tmp/secretval-audit.log
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServicePrefix != "com.example." {
		t.Errorf("ServicePrefix = %q, want %q", cfg.ServicePrefix, "com.example.")
	}
	if cfg.AuditLog != "/tmp/secretval-audit.log" {
		t.Errorf("AuditLog = %q, want %q", cfg.AuditLog, "/tmp/secretval-audit.log")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.ServicePrefix != "" {
		t.Errorf("ServicePrefix = %q, want empty", cfg.ServicePrefix)
	}
	if cfg.AuditLog != "" {
		t.Errorf("AuditLog = %q, want empty", cfg.AuditLog)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServicePrefix != "" {
		t.Errorf("ServicePrefix = %q, want empty", cfg.ServicePrefix)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("service_prefix: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
