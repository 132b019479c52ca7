package snapshot

import "sync"

// MemoryStore guards the live snapshot behind a RWMutex and hands out copies
// on read. Mutations of the allocation working set are not covered here:
// callers must serialize allocation operations per date themselves.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewMemoryStore returns a store primed with the given snapshot.
func NewMemoryStore(s Snapshot) *MemoryStore {
	return &MemoryStore{snap: s.Clone()}
}

// Load returns a copy of the current snapshot.
func (m *MemoryStore) Load() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Clone()
}

// Replace swaps in a new snapshot wholesale.
func (m *MemoryStore) Replace(s Snapshot) {
	m.mu.Lock()
	m.snap = s.Clone()
	m.mu.Unlock()
}
