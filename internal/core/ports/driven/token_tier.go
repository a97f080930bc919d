package driven

import "context"

// TokenTier is one physical persistence backend in the credential fallback chain.
// Every tier stores the raw credential string under the same logical key.
type TokenTier interface {
	// Name identifies the tier in logs (e.g. "sqlite", "file", "memory").
	Name() string

	// Get retrieves the value stored under key.
	// Returns domain.ErrNotFound if the key is absent and
	// domain.ErrStorageUnavailable if the backend cannot be reached.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
