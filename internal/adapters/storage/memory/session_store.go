package memory

import (
	"context"
	"sync"

	"pet-digital-twin/internal/ports/session"
)

// SessionStore guarda la sesión solo en memoria (tests y modo dev).
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]string)}
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}
