package journal

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory journal store for testing and short-lived
// processes. Entries are lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]*Entry
	closed  bool
}

// NewMemoryStore creates a new in-memory journal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]*Entry),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.Sequence = len(m.entries) + 1

	// Store a copy so later caller mutation can't corrupt the journal.
	stored := *entry
	if entry.Data != nil {
		stored.Data = append([]byte(nil), entry.Data...)
	}

	m.entries = append(m.entries, &stored)
	m.byID[stored.ID] = &stored
	return nil
}

// Get implements Store.
func (m *MemoryStore) Get(id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	entry, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *entry
	return &cp, nil
}

// List implements Store.
func (m *MemoryStore) List(eventName string) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	result := make([]*Entry, 0)
	for _, entry := range m.entries {
		if entry.EventName == eventName {
			cp := *entry
			result = append(result, &cp)
		}
	}
	return result, nil
}

// ListAll implements Store.
func (m *MemoryStore) ListAll(limit int) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]*Entry, 0, n)
	for _, entry := range m.entries[:n] {
		cp := *entry
		result = append(result, &cp)
	}
	return result, nil
}

// CountByEvent implements Store.
func (m *MemoryStore) CountByEvent() (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	counts := make(map[string]int)
	for _, entry := range m.entries {
		counts[entry.EventName]++
	}
	return counts, nil
}

// Purge implements Store.
func (m *MemoryStore) Purge(eventName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	kept := m.entries[:0]
	for _, entry := range m.entries {
		if entry.EventName == eventName {
			delete(m.byID, entry.ID)
			continue
		}
		kept = append(kept, entry)
	}
	m.entries = kept
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
