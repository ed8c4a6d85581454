package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keys sessions in process memory. Suitable for a
// single-instance deployment; a multi-instance one needs the Redis store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Start(_ context.Context, userID int64, email string) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = Session{UserID: userID, Email: email}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (Session, bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok, nil
}

func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
