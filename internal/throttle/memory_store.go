package throttle

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	rec       Record
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-process CounterStore. Used in tests
// and for single-instance deployments without redis. Expiry is checked
// lazily on Get.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return Record{}, false, nil
	}

	if m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		return Record{}, false, nil
	}

	return entry.rec, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, rec Record, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		rec:       rec,
		expiresAt: m.now().Add(ttl),
	}

	return nil
}

// SetClock overrides the expiry clock, for tests.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
