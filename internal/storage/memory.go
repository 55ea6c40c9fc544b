package storage

import (
	"context"
	"sync"
)

// maxMemoryEvents bounds the in-memory event buffer; the oldest events
// are dropped once the buffer is full.
const maxMemoryEvents = 10000

// MemoryStore keeps events in process memory. Used when postgres is not
// configured or unreachable; contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	events [][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveEvent(_ context.Context, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, stored)
	if len(s.events) > maxMemoryEvents {
		s.events = s.events[len(s.events)-maxMemoryEvents:]
	}
	return nil
}

func (s *MemoryStore) EventsCount(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.events)), nil
}

func (s *MemoryStore) Close() error {
	return nil
}
