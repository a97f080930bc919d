package driving

import (
	"context"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

// SessionService owns when the admin credential is minted or destroyed.
type SessionService interface {
	// Login clears any existing credential, authenticates against the public
	// login endpoint and stores the returned credential.
	// On failure the credential is cleared again and the error is returned.
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)

	// Logout clears the credential and notifies the server on a best-effort basis.
	// It succeeds even when the server cannot be reached.
	Logout(ctx context.Context) error

	// IsAuthenticated returns true if a credential is stored.
	IsAuthenticated(ctx context.Context) bool

	// State returns the derived session state.
	State(ctx context.Context) domain.SessionState
}
