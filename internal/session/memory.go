package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are dropped
// lazily on access and during saves.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return Data{}, nil
	}
	if s.expired(entry) {
		delete(s.entries, id)
		return Data{}, nil
	}
	return entry.data.clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	entry := memoryEntry{data: data.clone()}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[id] = entry
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)
}

func (s *MemoryStore) sweepLocked() {
	for id, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, id)
		}
	}
}
