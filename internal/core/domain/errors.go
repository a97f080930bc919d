package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown resource kind.
	ErrUnsupportedType = errors.New("unsupported type")

	// Storage Errors.

	// ErrStorageUnavailable indicates a credential tier backend cannot be reached.
	// The credential store recovers from it by falling through to the next tier.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Authentication Errors.

	// ErrAuthenticationFailed indicates the server rejected the credential
	// as missing, invalid, or expired.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTokenMissing indicates a login response carried no token field.
	ErrTokenMissing = errors.New("login response missing token")

	// ErrNotAuthenticated indicates an operation needs a stored credential.
	ErrNotAuthenticated = errors.New("not authenticated")
)
