package memory

import (
	"context"
	"sync"
)

// SlotStore keeps slot values in process memory
type SlotStore struct {
	mu     sync.RWMutex
	values map[slotKey]string
}

type slotKey struct {
	userID int64
	key    string
}

// NewSlotStore creates an empty in-memory slot store
func NewSlotStore() *SlotStore {
	return &SlotStore{values: make(map[slotKey]string)}
}

// GetSlot returns the stored value and whether it exists
func (s *SlotStore) GetSlot(_ context.Context, userID int64, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[slotKey{userID: userID, key: key}]
	return value, ok, nil
}

// SetSlot overwrites the stored value
func (s *SlotStore) SetSlot(_ context.Context, userID int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[slotKey{userID: userID, key: key}] = value
	return nil
}
