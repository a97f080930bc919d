package services

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialProvider = (*CredentialStore)(nil)

// CredentialStore persists the single admin credential across an ordered list
// of storage tiers. Reads take the first tier that yields a value; writes and
// deletes go to every tier. Tier failures are logged and never returned.
type CredentialStore struct {
	key   string
	tiers []driven.TokenTier

	// stale marks tiers (by index) left holding an outdated value because
	// both the write and the cleanup delete failed. Get skips them until a
	// later write or delete on that tier succeeds.
	mu    sync.Mutex
	stale map[int]bool
}

// NewCredentialStore creates a credential store over the given tiers,
// preferred tier first. Nil tiers are skipped.
func NewCredentialStore(key string, tiers ...driven.TokenTier) *CredentialStore {
	active := make([]driven.TokenTier, 0, len(tiers))
	for _, t := range tiers {
		if t != nil {
			active = append(active, t)
		}
	}
	return &CredentialStore{
		key:   key,
		tiers: active,
		stale: make(map[int]bool),
	}
}

// Get returns the current credential and whether one exists.
func (s *CredentialStore) Get(ctx context.Context) (domain.Credential, bool) {
	for i, tier := range s.tiers {
		if s.isStale(i) {
			logger.Debug("credential tier %s holds an outdated value, skipping", tier.Name())
			continue
		}
		value, err := tier.Get(ctx, s.key)
		switch {
		case err == nil && value != "":
			return domain.Credential(value), true
		case err == nil, errors.Is(err, domain.ErrNotFound):
			logger.Debug("credential tier %s: no credential", tier.Name())
		case errors.Is(err, domain.ErrStorageUnavailable):
			logger.Debug("credential tier %s unavailable, falling back", tier.Name())
		default:
			logger.Warn("credential tier %s read failed: %v", tier.Name(), err)
		}
	}
	return "", false
}

// Set stores the credential on every tier, replacing any previous one.
// An empty credential clears the store.
func (s *CredentialStore) Set(ctx context.Context, credential domain.Credential) {
	if credential.IsZero() {
		s.Clear(ctx)
		return
	}
	for i, tier := range s.tiers {
		if err := tier.Set(ctx, s.key, credential.String()); err != nil {
			logger.WithFields(map[string]any{"tier": tier.Name(), "key": s.key}).
				Warnf("credential write failed: %v", err)
			// A stale value left behind would shadow the new one on later reads.
			if delErr := tier.Delete(ctx, s.key); delErr != nil {
				logger.Warn("credential tier %s still holds an older credential, ignoring it: %v", tier.Name(), delErr)
				s.markStale(i, true)
				continue
			}
		}
		s.markStale(i, false)
	}
}

// Clear removes the credential from every tier. Safe when nothing is stored.
func (s *CredentialStore) Clear(ctx context.Context) {
	for i, tier := range s.tiers {
		if err := tier.Delete(ctx, s.key); err != nil {
			logger.Warn("credential tier %s delete failed: %v", tier.Name(), err)
			s.markStale(i, true)
			continue
		}
		s.markStale(i, false)
	}
}

func (s *CredentialStore) isStale(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale[i]
}

func (s *CredentialStore) markStale(i int, stale bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stale {
		s.stale[i] = true
	} else {
		delete(s.stale, i)
	}
}

// IsAuthenticated returns true if a credential is stored.
// This is the only authority for session state.
func (s *CredentialStore) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}

// TokenSource exposes the stored credential to oauth2-aware clients.
// The source never refreshes: a missing credential is an error.
func (s *CredentialStore) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &storeTokenSource{ctx: ctx, store: s}
}

// storeTokenSource adapts CredentialStore to oauth2.TokenSource.
type storeTokenSource struct {
	ctx   context.Context
	store *CredentialStore
}

// Token returns the stored credential as a bearer token.
func (ts *storeTokenSource) Token() (*oauth2.Token, error) {
	credential, ok := ts.store.Get(ts.ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return &oauth2.Token{
		AccessToken: credential.String(),
		TokenType:   "Bearer",
	}, nil
}
