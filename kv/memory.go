package kv

import (
	"sync"
	"time"
)

// Memory is an in-process KeyValueStore used in tests. Expired entries are
// dropped lazily on lookup.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

type memoryItem struct {
	value     string
	expiresAt time.Time
}

var _ KeyValueStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem)}
}

func (m *Memory) Set(key, value string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = memoryItem{value: value, expiresAt: time.Now().Add(exp)}
	return nil
}

func (m *Memory) Has(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return false, nil
	}

	if time.Now().After(item.expiresAt) {
		delete(m.items, key)
		return false, nil
	}

	return true, nil
}
