package secretval

import (
	"fmt"
	"sync"
)

// MemoryBackend is an in-memory implementation of Backend for tests and
// for environments with no reachable credential store. Items do not
// persist across restarts.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string][]byte)}
}

func (b *MemoryBackend) Search(service string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.items[service]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (b *MemoryBackend) Add(service string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[service] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Update(service string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.items[service]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	b.items[service] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Delete(service string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.items[service]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, service)
	}
	delete(b.items, service)
	return nil
}

// Len returns the number of stored items.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}
