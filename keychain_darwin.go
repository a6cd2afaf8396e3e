//go:build darwin

package secretval

import (
	"errors"
	"fmt"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemBackend stores items in the macOS Keychain as generic passwords.
type SystemBackend struct{}

// NewSystemBackend returns a Keychain-backed Backend.
func NewSystemBackend() *SystemBackend {
	return &SystemBackend{}
}

func (b *SystemBackend) Search(service string) ([]byte, error) {
	query := matchItem(service)
	query.SetMatchLimit(gokeychain.MatchLimitOne)
	query.SetReturnAttributes(true)
	query.SetReturnData(true)

	results, err := gokeychain.QueryItem(query)
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return nil, fmt.Errorf("keychain search %q: %w", service, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	if results[0].Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedData, service)
	}
	return results[0].Data, nil
}

func (b *SystemBackend) Add(service string, data []byte) error {
	item := matchItem(service)
	item.SetLabel(fmt.Sprintf("secretval: %s", service))
	item.SetData(data)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		return fmt.Errorf("keychain add %q: %w", service, err)
	}
	return nil
}

func (b *SystemBackend) Update(service string, data []byte) error {
	update := gokeychain.NewItem()
	update.SetData(data)

	err := gokeychain.UpdateItem(matchItem(service), update)
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return fmt.Errorf("keychain update %q: %w", service, err)
	}
	return nil
}

func (b *SystemBackend) Delete(service string) error {
	err := gokeychain.DeleteItem(matchItem(service))
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, service)
		}
		return fmt.Errorf("keychain delete %q: %w", service, err)
	}
	return nil
}

// matchItem builds the query fields shared by every operation: generic
// password class, exact service match, fixed account.
func matchItem(service string) gokeychain.Item {
	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(service)
	item.SetAccount(account)
	return item
}
