package store

import (
	"context"
	"sync"

	"wordchain/internal/domain"
)

// MemoryStore keeps snapshots in memory. Used in tests and anywhere
// durability is not wanted.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms []domain.RoomSnapshot
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveAll replaces the held snapshot set
func (s *MemoryStore) SaveAll(_ context.Context, rooms []domain.RoomSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append([]domain.RoomSnapshot(nil), rooms...)
	return nil
}

// LoadAll returns a copy of the held snapshots
func (s *MemoryStore) LoadAll(_ context.Context) ([]domain.RoomSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RoomSnapshot(nil), s.rooms...), nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
