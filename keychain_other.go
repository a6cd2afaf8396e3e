//go:build !darwin

package secretval

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// SystemBackend stores items in the platform credential store via
// go-keyring: the Secret Service on Linux, the Credential Manager on
// Windows. Payloads are carried as strings, which the keyring round-trips
// byte for byte.
type SystemBackend struct{}

// NewSystemBackend returns a keyring-backed Backend.
func NewSystemBackend() *SystemBackend {
	return &SystemBackend{}
}

func (b *SystemBackend) Search(service string) ([]byte, error) {
	val, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return nil, fmt.Errorf("keyring get %q: %w", service, err)
	}
	return []byte(val), nil
}

func (b *SystemBackend) Add(service string, data []byte) error {
	if err := keyring.Set(service, account, string(data)); err != nil {
		return fmt.Errorf("keyring set %q: %w", service, err)
	}
	return nil
}

// Update checks for an existing item first: the keyring has no native
// update primitive, and the Backend contract requires ErrNotFound when
// there is nothing to update.
func (b *SystemBackend) Update(service string, data []byte) error {
	if _, err := keyring.Get(service, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return fmt.Errorf("keyring get %q: %w", service, err)
	}
	if err := keyring.Set(service, account, string(data)); err != nil {
		return fmt.Errorf("keyring set %q: %w", service, err)
	}
	return nil
}

func (b *SystemBackend) Delete(service string) error {
	err := keyring.Delete(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return fmt.Errorf("keyring delete %q: %w", service, err)
	}
	return nil
}
