package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/adapters/driven/storage/memory"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

const testKey = "brb_admin_token"

// MockTokenTier implements driven.TokenTier with overridable behaviour.
type MockTokenTier struct {
	name       string
	values     map[string]string
	GetFunc    func(key string) (string, error)
	SetFunc    func(key, value string) error
	DeleteFunc func(key string) error
	deletes    int
}

func newMockTier(name string) *MockTokenTier {
	return &MockTokenTier{name: name, values: make(map[string]string)}
}

func (m *MockTokenTier) Name() string { return m.name }

func (m *MockTokenTier) Get(_ context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *MockTokenTier) Set(_ context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	m.values[key] = value
	return nil
}

func (m *MockTokenTier) Delete(_ context.Context, key string) error {
	m.deletes++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(key)
	}
	delete(m.values, key)
	return nil
}

var errDiskFull = errors.New("disk full")

func TestNewCredentialStore_SkipsNilTiers(t *testing.T) {
	store := NewCredentialStore(testKey, nil, memory.NewTokenStore(), nil)
	require.NotNil(t, store)
	assert.Len(t, store.tiers, 1)
}

func TestCredentialStore_SetGet_PrimaryHealthy(t *testing.T) {
	ctx := context.Background()
	for _, c := range []domain.Credential{"tok123", "a", "eyJhbGciOiJIUzI1NiJ9.e30.sig"} {
		primary := memory.NewTokenStore()
		fallback := memory.NewTokenStore()
		store := NewCredentialStore(testKey, primary, fallback)

		store.Set(ctx, c)

		got, ok := store.Get(ctx)
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestCredentialStore_Set_DuplicatesToFallback(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewTokenStore()
	fallback := memory.NewTokenStore()
	store := NewCredentialStore(testKey, primary, fallback)

	store.Set(ctx, "tok123")

	value, err := fallback.Get(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, "tok123", value, "fallback stores the raw credential")
}

func TestCredentialStore_PrimaryWriteFails_FallbackServesGet(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	primary.SetFunc = func(string, string) error { return errDiskFull }
	fallback := memory.NewTokenStore()
	store := NewCredentialStore(testKey, primary, fallback)

	store.Set(ctx, "tok123")

	got, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Credential("tok123"), got)
	assert.Equal(t, 1, primary.deletes, "stale primary value is removed after failed write")
}

func TestCredentialStore_PrimaryWriteFails_StaleValueDoesNotShadow(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	primary.values[testKey] = "old-token"
	primary.SetFunc = func(string, string) error { return errDiskFull }
	fallback := memory.NewTokenStore()
	store := NewCredentialStore(testKey, primary, fallback)

	store.Set(ctx, "new-token")

	got, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Credential("new-token"), got)
}

func TestCredentialStore_PrimaryWriteAndDeleteFail_OldValueIgnored(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	fallback := memory.NewTokenStore()
	store := NewCredentialStore(testKey, primary, fallback)
	store.Set(ctx, "old-token")

	// Reads still succeed, but the tier can no longer be changed.
	primary.SetFunc = func(string, string) error { return errDiskFull }
	primary.DeleteFunc = func(string) error { return errDiskFull }
	store.Set(ctx, "new-token")

	got, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Credential("new-token"), got)
	assert.Equal(t, "old-token", primary.values[testKey])
}

func TestCredentialStore_PrimaryRecovers_ServesAgain(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	primary.values[testKey] = "old-token"
	primary.SetFunc = func(string, string) error { return errDiskFull }
	primary.DeleteFunc = func(string) error { return errDiskFull }
	fallback := newMockTier("fallback")
	store := NewCredentialStore(testKey, primary, fallback)
	store.Set(ctx, "new-token")

	primary.SetFunc = nil
	primary.DeleteFunc = nil
	store.Set(ctx, "newest-token")
	delete(fallback.values, testKey)

	got, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Credential("newest-token"), got)
}

func TestCredentialStore_ClearDeleteFails_OldValueIgnored(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	store := NewCredentialStore(testKey, primary, memory.NewTokenStore())
	store.Set(ctx, "tok123")
	primary.DeleteFunc = func(string) error { return errDiskFull }

	store.Clear(ctx)

	_, ok := store.Get(ctx)
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated(ctx))
}

func TestCredentialStore_PrimaryUnavailable(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewTokenStore()
	primary.SetUnavailable(true)
	fallback := memory.NewTokenStore()
	store := NewCredentialStore(testKey, primary, fallback)

	store.Set(ctx, "tok123")

	got, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Credential("tok123"), got)
}

func TestCredentialStore_PrimaryReadErrors_FallsBack(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	primary.GetFunc = func(string) (string, error) { return "", errors.New("corrupt database") }
	fallback := memory.NewTokenStore()
	require.NoError(t, fallback.Set(ctx, testKey, "tok123"))
	store := NewCredentialStore(testKey, primary, fallback)

	got, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, domain.Credential("tok123"), got)
}

func TestCredentialStore_AllTiersFail_ReturnsAbsent(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewTokenStore()
	primary.SetUnavailable(true)
	fallback := memory.NewTokenStore()
	fallback.SetUnavailable(true)
	store := NewCredentialStore(testKey, primary, fallback)

	store.Set(ctx, "tok123")
	store.Clear(ctx)

	got, ok := store.Get(ctx)
	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestCredentialStore_NoTiers(t *testing.T) {
	store := NewCredentialStore(testKey)
	ctx := context.Background()

	store.Set(ctx, "tok123")
	_, ok := store.Get(ctx)
	assert.False(t, ok)
	assert.False(t, store.IsAuthenticated(ctx))
}

func TestCredentialStore_Clear_AnyPriorState(t *testing.T) {
	ctx := context.Background()
	setups := map[string]func(s *CredentialStore){
		"empty":         func(*CredentialStore) {},
		"set":           func(s *CredentialStore) { s.Set(ctx, "tok123") },
		"set twice":     func(s *CredentialStore) { s.Set(ctx, "a"); s.Set(ctx, "b") },
		"already clear": func(s *CredentialStore) { s.Set(ctx, "a"); s.Clear(ctx) },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			store := NewCredentialStore(testKey, memory.NewTokenStore(), memory.NewTokenStore())
			setup(store)

			store.Clear(ctx)

			_, ok := store.Get(ctx)
			assert.False(t, ok)
		})
	}
}

func TestCredentialStore_Clear_DeletesEveryTierEvenOnFailure(t *testing.T) {
	ctx := context.Background()
	primary := newMockTier("primary")
	primary.DeleteFunc = func(string) error { return errDiskFull }
	fallback := newMockTier("fallback")
	fallback.values[testKey] = "tok123"
	store := NewCredentialStore(testKey, primary, fallback)

	store.Clear(ctx)

	assert.Equal(t, 1, primary.deletes)
	assert.Equal(t, 1, fallback.deletes)
	assert.Empty(t, fallback.values)
}

func TestCredentialStore_SetEmpty_Clears(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(testKey, memory.NewTokenStore())
	store.Set(ctx, "tok123")

	store.Set(ctx, "")

	assert.False(t, store.IsAuthenticated(ctx))
}

func TestCredentialStore_NewLoginOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(testKey, memory.NewTokenStore(), memory.NewTokenStore())

	store.Set(ctx, "first")
	store.Set(ctx, "second")

	got, _ := store.Get(ctx)
	assert.Equal(t, domain.Credential("second"), got)
}

func TestCredentialStore_IsAuthenticatedMatchesGet(t *testing.T) {
	ctx := context.Background()
	primary := memory.NewTokenStore()
	store := NewCredentialStore(testKey, primary, memory.NewTokenStore())

	steps := []func(){
		func() {},
		func() { store.Set(ctx, "tok123") },
		func() { primary.SetUnavailable(true) },
		func() { store.Clear(ctx) },
		func() { primary.SetUnavailable(false); store.Set(ctx, "tok456") },
		func() { store.Set(ctx, "") },
	}

	for i, step := range steps {
		step()
		_, ok := store.Get(ctx)
		assert.Equal(t, ok, store.IsAuthenticated(ctx), "step %d", i)
	}
}

func TestCredentialStore_TokenSource(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(testKey, memory.NewTokenStore())
	ts := store.TokenSource(ctx)

	_, err := ts.Token()
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	store.Set(ctx, "tok123")
	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.Type())
}

var _ driven.TokenTier = (*MockTokenTier)(nil)
