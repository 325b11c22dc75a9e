package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/clubhub/internal/domain/dto"
	"github.com/campushub/clubhub/internal/domain/errs"
)

type sessionEntry struct {
	identity  dto.Identity
	expiresAt time.Time
}

// SessionStore is the in-process session backend used by tests.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
	}
}

func (s *SessionStore) Set(_ context.Context, token string, identity dto.Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = sessionEntry{
		identity:  identity,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (dto.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[token]
	if !ok || time.Now().After(entry.expiresAt) {
		return dto.Identity{}, errs.ErrUnauthenticated
	}
	return entry.identity, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
