package memory

import (
	"context"
	"sync"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// Ensure TokenStore implements the interface.
var _ driven.TokenTier = (*TokenStore)(nil)

// TokenStore is an in-memory credential tier. It lives for the process
// lifetime and serves as the last-resort tier and as a test double.
type TokenStore struct {
	mu          sync.RWMutex
	values      map[string]string
	unavailable bool
}

// NewTokenStore creates a new in-memory token tier.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		values: make(map[string]string),
	}
}

// Name returns the tier name.
func (s *TokenStore) Name() string {
	return "memory"
}

// SetUnavailable makes every operation fail with domain.ErrStorageUnavailable.
func (s *TokenStore) SetUnavailable(unavailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = unavailable
}

// Get retrieves the value stored under key.
func (s *TokenStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unavailable {
		return "", domain.ErrStorageUnavailable
	}
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

// Set stores value under key.
func (s *TokenStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return domain.ErrStorageUnavailable
	}
	s.values[key] = value
	return nil
}

// Delete removes key.
func (s *TokenStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable {
		return domain.ErrStorageUnavailable
	}
	delete(s.values, key)
	return nil
}
