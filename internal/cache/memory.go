package cache

import (
	"container/list"
	"context"
	"sync"
)

// DefaultMaxEntries bounds the in-memory cache when no size is configured.
const DefaultMaxEntries = 10000

// Memory is a bounded in-memory cache with FIFO eviction: once the store is
// full, the oldest inserted entries are dropped to make room. A single mutex
// guards all access, which is sufficient for the build-time access pattern.
type Memory struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]*list.Element
	order      *list.List
}

// memoryEntry is one stored key-value pair, kept in insertion order.
type memoryEntry struct {
	key   string
	value []byte
}

// NewMemory creates a bounded in-memory cache. Non-positive maxEntries falls
// back to DefaultMaxEntries.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Memory{
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

// Get returns the cached value for key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}

	entry, _ := elem.Value.(*memoryEntry)

	return entry.value, true, nil
}

// Put stores a value, overwriting any existing entry for key and evicting the
// oldest entry when the store is full.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.entries[key]; ok {
		entry, _ := elem.Value.(*memoryEntry)
		entry.value = value

		return nil
	}

	for len(m.entries) >= m.maxEntries {
		m.evictOldest()
	}

	m.entries[key] = m.order.PushBack(&memoryEntry{key: key, value: value})

	return nil
}

// Evict removes a single key.
func (m *Memory) Evict(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.entries[key]; ok {
		m.order.Remove(elem)
		delete(m.entries, key)
	}

	return nil
}

// Len returns the current entry count.
func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries), nil
}

// evictOldest drops the oldest inserted entry. Caller holds the lock.
func (m *Memory) evictOldest() {
	front := m.order.Front()
	if front == nil {
		return
	}

	entry, _ := front.Value.(*memoryEntry)
	m.order.Remove(front)
	delete(m.entries, entry.key)
}
