package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrStorageUnavailable", ErrStorageUnavailable},
		{"ErrAuthenticationFailed", ErrAuthenticationFailed},
		{"ErrTokenMissing", ErrTokenMissing},
		{"ErrNotAuthenticated", ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrAuthenticationFailed, ErrNotAuthenticated))
	assert.False(t, errors.Is(ErrStorageUnavailable, ErrNotFound))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("GET /admin/orders/: %w", ErrAuthenticationFailed)
	assert.True(t, errors.Is(wrapped, ErrAuthenticationFailed))
	assert.Equal(t, "GET /admin/orders/: authentication failed", wrapped.Error())
}
