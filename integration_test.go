//go:build integration

package secretval

import (
	"testing"
)

// Integration tests use the real platform credential store.
// Run with: go test -tags integration .
//
// On macOS an unlocked login Keychain and an interactive session are
// required (first run may prompt for Keychain access approval).

func cleanupIntegration(t *testing.T, b *SystemBackend, services ...string) {
	t.Helper()
	for _, s := range services {
		b.Delete(s)
	}
}

func TestSystemRoundTrip(t *testing.T) {
	backend := NewSystemBackend()
	service := "com.loambank.secretval.test.round-trip"
	defer cleanupIntegration(t, backend, service)

	val := NewString(backend, service, "")
	val.Set("hello-keychain")

	if got := val.Get(); got != "hello-keychain" {
		t.Errorf("expected 'hello-keychain', got %q", got)
	}
}

func TestSystemOverwrite(t *testing.T) {
	backend := NewSystemBackend()
	service := "com.loambank.secretval.test.overwrite"
	defer cleanupIntegration(t, backend, service)

	val := NewString(backend, service, "")
	val.Set("first")
	val.Set("second")

	if got := val.Get(); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
}

func TestSystemDelete(t *testing.T) {
	backend := NewSystemBackend()
	service := "com.loambank.secretval.test.delete"

	val := NewString(backend, service, "fallback")
	val.Set("to-delete")
	val.Delete()

	if got := val.Get(); got != "fallback" {
		t.Errorf("expected default after delete, got %q", got)
	}
}

func TestSystemDefaultOnEmpty(t *testing.T) {
	backend := NewSystemBackend()
	val := NewString(backend, "com.loambank.secretval.test.never-written", "fallback")

	if got := val.Get(); got != "fallback" {
		t.Errorf("expected default, got %q", got)
	}
}
