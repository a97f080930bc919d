package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// MockSessionService implements driving.SessionService.
type MockSessionService struct {
	LoginFunc  func(email, password string) (*domain.LoginResult, error)
	LogoutErr  error
	Logouts    int
	StateValue domain.SessionState
}

func (m *MockSessionService) Login(_ context.Context, email, password string) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return &domain.LoginResult{Credential: "tok123"}, nil
}

func (m *MockSessionService) Logout(_ context.Context) error {
	m.Logouts++
	return m.LogoutErr
}

func (m *MockSessionService) IsAuthenticated(_ context.Context) bool {
	return m.StateValue == domain.SessionAuthenticated
}

func (m *MockSessionService) State(_ context.Context) domain.SessionState {
	if m.StateValue == "" {
		return domain.SessionAnonymous
	}
	return m.StateValue
}

// resourceCall records one MockResourceService invocation.
type resourceCall struct {
	Op    string
	Kind  domain.ResourceKind
	ID    string
	Query map[string]string
	Body  any
}

// MockResourceService implements driving.ResourceService.
type MockResourceService struct {
	Calls    []resourceCall
	Response json.RawMessage
	Err      error
}

func (m *MockResourceService) record(c resourceCall) (json.RawMessage, error) {
	m.Calls = append(m.Calls, c)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *MockResourceService) List(
	_ context.Context, kind domain.ResourceKind, query map[string]string,
) (json.RawMessage, error) {
	return m.record(resourceCall{Op: "list", Kind: kind, Query: query})
}

func (m *MockResourceService) Get(_ context.Context, kind domain.ResourceKind, id string) (json.RawMessage, error) {
	return m.record(resourceCall{Op: "get", Kind: kind, ID: id})
}

func (m *MockResourceService) Create(_ context.Context, kind domain.ResourceKind, body any) (json.RawMessage, error) {
	return m.record(resourceCall{Op: "create", Kind: kind, Body: body})
}

func (m *MockResourceService) Update(
	_ context.Context, kind domain.ResourceKind, id string, body any,
) (json.RawMessage, error) {
	return m.record(resourceCall{Op: "update", Kind: kind, ID: id, Body: body})
}

func (m *MockResourceService) Patch(
	_ context.Context, kind domain.ResourceKind, id string, body any,
) (json.RawMessage, error) {
	return m.record(resourceCall{Op: "patch", Kind: kind, ID: id, Body: body})
}

func (m *MockResourceService) Delete(_ context.Context, kind domain.ResourceKind, id string) error {
	_, err := m.record(resourceCall{Op: "delete", Kind: kind, ID: id})
	return err
}

// MockSettingsService implements driving.SettingsService.
type MockSettingsService struct {
	Settings domain.ClientSettings
	SetErr   error
	SetCalls [][2]string
}

func (m *MockSettingsService) Get() (*domain.ClientSettings, error) {
	s := m.Settings
	return &s, nil
}

func (m *MockSettingsService) Set(key, value string) error {
	m.SetCalls = append(m.SetCalls, [2]string{key, value})
	return m.SetErr
}

func (m *MockSettingsService) Keys() []string { return nil }

func (m *MockSettingsService) GetDefaults() domain.ClientSettings {
	return domain.DefaultClientSettings()
}

// clientCall records one MockAPIClient invocation.
type clientCall struct {
	Method  string
	Path    string
	Body    any
	Config  *driven.RequestConfig
	UseAuth bool
}

// MockAPIClient implements driven.APIClient.
type MockAPIClient struct {
	Calls []clientCall
	Err   error
}

func (m *MockAPIClient) do(method, path string, body any, cfg *driven.RequestConfig, useAuth bool) (*driven.Response, error) {
	m.Calls = append(m.Calls, clientCall{Method: method, Path: path, Body: body, Config: cfg, UseAuth: useAuth})
	if m.Err != nil {
		return nil, m.Err
	}
	return &driven.Response{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)}, nil
}

func (m *MockAPIClient) Get(_ context.Context, path string, cfg *driven.RequestConfig, useAuth bool) (*driven.Response, error) {
	return m.do(http.MethodGet, path, nil, cfg, useAuth)
}

func (m *MockAPIClient) Post(
	_ context.Context, path string, body any, cfg *driven.RequestConfig, useAuth bool,
) (*driven.Response, error) {
	return m.do(http.MethodPost, path, body, cfg, useAuth)
}

func (m *MockAPIClient) Put(
	_ context.Context, path string, body any, cfg *driven.RequestConfig, useAuth bool,
) (*driven.Response, error) {
	return m.do(http.MethodPut, path, body, cfg, useAuth)
}

func (m *MockAPIClient) Patch(
	_ context.Context, path string, body any, cfg *driven.RequestConfig, useAuth bool,
) (*driven.Response, error) {
	return m.do(http.MethodPatch, path, body, cfg, useAuth)
}

func (m *MockAPIClient) Delete(_ context.Context, path string, cfg *driven.RequestConfig, useAuth bool) (*driven.Response, error) {
	return m.do(http.MethodDelete, path, nil, cfg, useAuth)
}

// recordingLocator implements Locator.
type recordingLocator struct {
	locations []string
}

func (r *recordingLocator) SetLocation(path string) {
	r.locations = append(r.locations, path)
}

// testServices bundles the mocks installed by setupTestServices.
type testServices struct {
	session   *MockSessionService
	resources *MockResourceService
	settings  *MockSettingsService
	api       *MockAPIClient
	locator   *recordingLocator
}

// setupTestServices installs fresh mocks and resets every flag.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		session:   &MockSessionService{},
		resources: &MockResourceService{Response: json.RawMessage(`{"id":1}`)},
		settings:  &MockSettingsService{Settings: domain.DefaultClientSettings()},
		api:       &MockAPIClient{},
		locator:   &recordingLocator{},
	}
	SetServices(Services{
		Session:   ts.session,
		Resources: ts.resources,
		Settings:  ts.settings,
		API:       ts.api,
		Locator:   ts.locator,
	})
	resetFlags(rootCmd)

	t.Cleanup(func() {
		SetServices(Services{})
		resetFlags(rootCmd)
	})
	return ts
}

// resetFlags restores every flag in the tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and stdin, returning stdout.
func executeCommand(stdin string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
