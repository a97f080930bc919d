package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

// MockCredentialProvider implements driven.CredentialProvider.
type MockCredentialProvider struct {
	mu         sync.Mutex
	credential domain.Credential
	clears     int
}

func (m *MockCredentialProvider) Get(_ context.Context) (domain.Credential, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credential, m.credential != ""
}

func (m *MockCredentialProvider) Clear(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credential = ""
	m.clears++
}

// MockNavigator implements driven.Navigator and records navigations.
type MockNavigator struct {
	mu        sync.Mutex
	location  string
	navigated []string
}

func (m *MockNavigator) Location() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.location
}

func (m *MockNavigator) Navigate(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.location = path
	m.navigated = append(m.navigated, path)
}

func (m *MockNavigator) Navigations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.navigated...)
}

func newAuthedClient(t *testing.T, baseURL string, creds *MockCredentialProvider, nav *MockNavigator) *Client {
	t.Helper()
	return newTestClient(t, baseURL, Config{
		Auth: NewAuthInterceptor(creds, nav, "/login"),
	})
}

func TestAuthInterceptor_InjectsBearer(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK, `{}`)
	creds := &MockCredentialProvider{credential: "tok123"}
	client := newAuthedClient(t, srv.URL, creds, &MockNavigator{location: "/dashboard"})

	_, err := client.Get(context.Background(), "/admin/products/", nil, true)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", captured.all()[0].Headers.Get("Authorization"))
}

func TestAuthInterceptor_NoCredential_OmitsHeaderAndCompletes(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK, `{"ok":true}`)
	client := newAuthedClient(t, srv.URL, &MockCredentialProvider{}, &MockNavigator{})

	resp, err := client.Get(context.Background(), "/admin/products/", nil, true)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_, present := captured.all()[0].Headers["Authorization"]
	assert.False(t, present)
}

func TestAuthInterceptor_PublicTransportNeverInjects(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK, `{}`)
	client := newAuthedClient(t, srv.URL, &MockCredentialProvider{credential: "tok123"}, &MockNavigator{})

	_, err := client.Post(context.Background(), "/auth/admin/login/", map[string]string{}, nil, false)

	require.NoError(t, err)
	assert.Empty(t, captured.all()[0].Headers.Get("Authorization"))
}

func TestAuthInterceptor_Unauthorized_ClearsNavigatesOnceAndReturnsError(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusUnauthorized, `{"detail":"Token expired"}`)
	creds := &MockCredentialProvider{credential: "tok123"}
	nav := &MockNavigator{location: "/orders"}
	client := newAuthedClient(t, srv.URL, creds, nav)

	resp, err := client.Get(context.Background(), "/admin/orders/", nil, true)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, `{"detail":"Token expired"}`, string(apiErr.Body))

	_, ok := creds.Get(context.Background())
	assert.False(t, ok)
	assert.Equal(t, []string{"/login"}, nav.Navigations())
}

func TestAuthInterceptor_AlreadyOnLogin_NoNavigation(t *testing.T) {
	for _, location := range []string{"/login", "/login/", "login"} {
		t.Run(location, func(t *testing.T) {
			srv, _ := newCaptureServer(t, http.StatusUnauthorized, `{}`)
			creds := &MockCredentialProvider{credential: "tok123"}
			nav := &MockNavigator{location: location}
			client := newAuthedClient(t, srv.URL, creds, nav)

			_, err := client.Get(context.Background(), "/auth/admin/me/", nil, true)

			assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
			assert.Empty(t, nav.Navigations())
			assert.Equal(t, 1, creds.clears)
		})
	}
}

func TestAuthInterceptor_NonAuthErrors_NoSideEffects(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusBadGateway} {
		srv, _ := newCaptureServer(t, status, `{}`)
		creds := &MockCredentialProvider{credential: "tok123"}
		nav := &MockNavigator{location: "/products"}
		client := newAuthedClient(t, srv.URL, creds, nav)

		_, err := client.Get(context.Background(), "/admin/products/", nil, true)

		assert.Equal(t, status, StatusCode(err))
		assert.Equal(t, 0, creds.clears, "status %d", status)
		assert.Empty(t, nav.Navigations(), "status %d", status)
	}
}

func TestAuthInterceptor_PublicUnauthorized_NoSideEffects(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusUnauthorized, `{"detail":"bad credentials"}`)
	creds := &MockCredentialProvider{credential: "tok123"}
	nav := &MockNavigator{location: "/products"}
	client := newAuthedClient(t, srv.URL, creds, nav)

	_, err := client.Post(context.Background(), "/auth/admin/login/", map[string]string{}, nil, false)

	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	assert.Equal(t, 0, creds.clears)
	assert.Empty(t, nav.Navigations())
}

func TestAuthInterceptor_ConcurrentUnauthorized_NavigatesOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	creds := &MockCredentialProvider{credential: "tok123"}
	nav := &MockNavigator{location: "/dashboard"}
	client := newAuthedClient(t, srv.URL, creds, nav)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Get(context.Background(), "/admin/orders/", nil, true)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	}
	assert.Equal(t, []string{"/login"}, nav.Navigations())
}

func TestAuthInterceptor_CancelledContextStillClears(t *testing.T) {
	creds := &MockCredentialProvider{credential: "tok123"}
	nav := &MockNavigator{location: "/dashboard"}
	interceptor := NewAuthInterceptor(creds, nav, "/login")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders/", nil).WithContext(ctx)
	authErr := &APIError{Method: http.MethodGet, URL: "/admin/orders/", StatusCode: http.StatusUnauthorized}

	err := interceptor.AfterResponse(req, nil, authErr)

	assert.Same(t, authErr, err)
	assert.Equal(t, 1, creds.clears)
	assert.Equal(t, []string{"/login"}, nav.Navigations())
}

func TestAuthInterceptor_NilNavigator(t *testing.T) {
	creds := &MockCredentialProvider{credential: "tok123"}
	interceptor := NewAuthInterceptor(creds, nil, "/login")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	err := interceptor.AfterResponse(req, nil, &APIError{StatusCode: http.StatusUnauthorized})

	assert.ErrorIs(t, err, domain.ErrAuthenticationFailed)
	assert.Equal(t, 1, creds.clears)
	assert.Equal(t, "/login", interceptor.LoginPath())
}

func TestAuthInterceptor_PassesSuccessThrough(t *testing.T) {
	creds := &MockCredentialProvider{credential: "tok123"}
	interceptor := NewAuthInterceptor(creds, &MockNavigator{}, "/login")
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.NoError(t, interceptor.AfterResponse(req, nil, nil))
	assert.Equal(t, 0, creds.clears)
}
