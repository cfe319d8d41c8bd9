package store

import (
	"context"
	"sync"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
)

// MemoryStore keeps connections in process memory. Used for local runs and
// when no database is configured.
type MemoryStore struct {
	mu          sync.RWMutex
	connections map[string]business.WalletConnection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{connections: make(map[string]business.WalletConnection)}
}

func (s *MemoryStore) GetConnection(_ context.Context, sessionID string) (*business.WalletConnection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conn, ok := s.connections[sessionID]
	if !ok {
		return nil, ErrConnectionNotFound
	}
	return &conn, nil
}

func (s *MemoryStore) SaveConnection(_ context.Context, conn business.WalletConnection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connections[conn.SessionID] = conn
	return nil
}

func (s *MemoryStore) DeleteConnection(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.connections, sessionID)
	return nil
}
