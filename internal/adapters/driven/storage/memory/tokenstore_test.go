package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

func TestNewTokenStore(t *testing.T) {
	store := NewTokenStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, "memory", store.Name())
}

func TestTokenStore_SetGet(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "brb_admin_token", "tok123"))

	value, err := store.Get(ctx, "brb_admin_token")
	require.NoError(t, err)
	assert.Equal(t, "tok123", value)
}

func TestTokenStore_Get_NotFound(t *testing.T) {
	store := NewTokenStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTokenStore_Delete_Idempotent(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTokenStore_Unavailable(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", "v"))

	store.SetUnavailable(true)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.ErrorIs(t, store.Set(ctx, "k", "w"), domain.ErrStorageUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, "k"), domain.ErrStorageUnavailable)

	store.SetUnavailable(false)
	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestTokenStore_Concurrent(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "k", "v")
			_, _ = store.Get(ctx, "k")
			_ = store.Delete(ctx, "k")
		}()
	}
	wg.Wait()
}
