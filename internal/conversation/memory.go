package conversation

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps wizard entries in process memory. This is the default
// backend: entries are ephemeral by design and a restart simply drops any
// half-finished wizard.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[int64]*Entry
}

// NewMemoryStorage returns an empty in-memory Storage implementation.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[int64]*Entry)}
}

// Get returns a copy of the stored entry or ErrEntryNotFound.
func (s *MemoryStorage) Get(ctx context.Context, userID int64) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[userID]
	if !ok {
		return nil, ErrEntryNotFound
	}

	copied := *entry
	return &copied, nil
}

// Set stores a copy of the entry, stamping UpdatedAt.
func (s *MemoryStorage) Set(ctx context.Context, userID int64, entry *Entry) error {
	copied := *entry
	copied.UpdatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = &copied
	return nil
}

// Clear removes the entry for the given user.
func (s *MemoryStorage) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}
