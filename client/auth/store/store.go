package store

import (
	"fmt"
	"sync"
)

// Kind identifies one of the two session credentials.
type Kind int

const (
	// Access is the short-lived credential attached to every API call.
	Access Kind = iota
	// Refresh is the long-lived credential exchanged for a new access credential.
	Refresh
)

// Key returns the persistence key of the credential kind.
func (k Kind) Key() string {
	switch k {
	case Access:
		return "accessToken"
	case Refresh:
		return "refreshToken"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) String() string {
	return k.Key()
}

// Store is a pluggable persistence layer for the session credentials.
// Values are opaque; the last write wins. An empty value is never stored:
// setting "" is the same as Clear.
type Store interface {
	// Get returns the stored value, false when never set, cleared or empty.
	Get(kind Kind) (string, bool)
	// Set overwrites the stored value; "" removes it.
	Set(kind Kind, value string) error
	// Clear removes the stored value.
	Clear(kind Kind) error
}

// ClearAll removes both credentials, returning the first error.
func ClearAll(s Store) error {
	accessErr := s.Clear(Access)
	refreshErr := s.Clear(Refresh)
	if accessErr != nil {
		return accessErr
	}
	return refreshErr
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[Kind]string
}

func (m *memoryStore) Get(kind Kind) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[kind]
	return value, ok
}

func (m *memoryStore) Set(kind Kind, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == "" {
		delete(m.values, kind)
		return nil
	}
	m.values[kind] = value
	return nil
}

func (m *memoryStore) Clear(kind Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, kind)
	return nil
}

// MemoryStoreOption configures a memory store.
type MemoryStoreOption func(*memoryStore)

// WithCredentials seeds the store with an access and a refresh credential;
// empty values are left absent.
func WithCredentials(access, refresh string) MemoryStoreOption {
	return func(m *memoryStore) {
		if access != "" {
			m.values[Access] = access
		}
		if refresh != "" {
			m.values[Refresh] = refresh
		}
	}
}

// NewMemoryStore creates a process-local store.
func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[Kind]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
