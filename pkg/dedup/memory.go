package dedup

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store.
type Memory struct {
	seen map[string]time.Time // key -> expiry
	now  func() time.Time
	mu   sync.Mutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Seen implements Store.
func (m *Memory) Seen(_ context.Context, key string, window time.Duration) (bool, error) {
	if window <= 0 {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if expiry, ok := m.seen[key]; ok && now.Before(expiry) {
		return true, nil
	}
	m.seen[key] = now.Add(window)
	return false, nil
}

// Forget implements Store.
func (m *Memory) Forget(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seen, key)
	return nil
}

// Purge drops expired keys and returns how many were removed.
// Call it periodically for long-running processes with many distinct alerts.
func (m *Memory) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, expiry := range m.seen {
		if !now.Before(expiry) {
			delete(m.seen, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}
