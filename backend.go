// Package secretval persists a single typed value in the platform
// credential store, keyed by a stable service identifier.
//
// Items are stored as generic passwords with:
//   - Service: the caller-chosen service identifier (the primary key)
//   - Account: "default" (one item per service, always)
//
// On macOS items are scoped AccessibleWhenUnlockedThisDeviceOnly: never
// synced to iCloud, never available while the machine is locked. On
// other platforms the Secret Service (Linux) or Credential Manager
// (Windows) is used via go-keyring.
//
// Value[V] never surfaces store or codec errors to the caller: Get
// degrades to the configured default and Set/Delete become no-ops, with
// failure detail available through an optional slog.Logger.
package secretval

import "errors"

// account is the fixed account attribute for all items. The service
// identifier alone keys an item; the account exists because the
// underlying stores require one.
const account = "default"

// ErrNotFound is returned by a Backend when no item exists for a service.
var ErrNotFound = errors.New("item not found")

// ErrUnexpectedData is returned by a Backend when the store produced a
// record without the expected data payload.
var ErrUnexpectedData = errors.New("item has unexpected data")

// Backend is the four-primitive contract against the credential store.
type Backend interface {
	// Search returns the data payload of the item stored for service,
	// or ErrNotFound.
	Search(service string) ([]byte, error)

	// Add creates an item for service.
	Add(service string, data []byte) error

	// Update replaces the payload of an existing item, returning
	// ErrNotFound when there is none.
	Update(service string, data []byte) error

	// Delete removes the item for service, returning ErrNotFound when
	// there is none.
	Delete(service string) error
}
