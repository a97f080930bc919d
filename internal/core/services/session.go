package services

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driving"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionConfig names the remote endpoints a session talks to.
type SessionConfig struct {
	// LoginPath is the public login endpoint.
	LoginPath string
	// LogoutPath is the remote logout notification endpoint. Empty skips it.
	LogoutPath string
	// TokenField is the gjson path of the credential in the login response.
	TokenField string
	// Navigator, if set, is moved to HomePath after a successful login so a
	// later session loss navigates to the login path again.
	Navigator driven.Navigator
	// HomePath is the post-login location. Defaults to "/".
	HomePath string
}

// SessionService mints and destroys the admin credential.
type SessionService struct {
	client      driven.APIClient
	credentials *CredentialStore
	notifier    driven.Notifier
	cfg         SessionConfig
}

// NewSessionService creates a new session service.
// notifier may be nil.
func NewSessionService(
	client driven.APIClient,
	credentials *CredentialStore,
	notifier driven.Notifier,
	cfg SessionConfig,
) *SessionService {
	defaults := domain.DefaultClientSettings()
	if cfg.LoginPath == "" {
		cfg.LoginPath = defaults.API.LoginPath
	}
	if cfg.TokenField == "" {
		cfg.TokenField = defaults.API.TokenField
	}
	if cfg.HomePath == "" {
		cfg.HomePath = "/"
	}
	return &SessionService{
		client:      client,
		credentials: credentials,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// Login authenticates and stores the returned credential.
// Any existing credential is cleared first so it is never sent alongside
// a login attempt, and cleared again if the attempt fails.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	s.credentials.Clear(ctx)

	result, err := s.login(ctx, domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.credentials.Clear(ctx)
		return nil, err
	}

	s.credentials.Set(ctx, result.Credential)
	logger.Info("logged in as %s (credential %s)", email, result.Credential.Redacted())
	s.notify(driven.NotifySuccess, "Logged in as "+email)
	if s.cfg.Navigator != nil {
		s.cfg.Navigator.Navigate(s.cfg.HomePath)
	}
	return result, nil
}

func (s *SessionService) login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("login: email and password are required: %w", err)
	}

	resp, err := s.client.Post(ctx, s.cfg.LoginPath, req, nil, false)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	token := gjson.GetBytes(resp.Body, s.cfg.TokenField)
	if !token.Exists() || token.IsObject() || token.IsArray() || token.String() == "" {
		return nil, fmt.Errorf("login: %w: field %q", domain.ErrTokenMissing, s.cfg.TokenField)
	}

	return &domain.LoginResult{
		Credential: domain.Credential(token.String()),
		Raw:        resp.Body,
	}, nil
}

// Logout clears the credential, then tells the server on a best-effort basis.
// The remote call goes over the public transport with the captured credential
// so a rejected logout cannot trigger session-loss handling.
func (s *SessionService) Logout(ctx context.Context) error {
	token, tokenErr := s.credentials.TokenSource(ctx).Token()
	s.credentials.Clear(ctx)
	s.notify(driven.NotifyInfo, "Logged out")

	if tokenErr != nil {
		logger.Debug("logout: no credential stored, skipping remote logout")
		return nil
	}
	if s.cfg.LogoutPath == "" {
		return nil
	}

	cfg := &driven.RequestConfig{
		Headers: map[string]string{"Authorization": token.Type() + " " + token.AccessToken},
	}
	if _, err := s.client.Post(ctx, s.cfg.LogoutPath, nil, cfg, false); err != nil {
		logger.Warn("remote logout failed, local session cleared: %v", err)
	}
	return nil
}

// IsAuthenticated returns true if a credential is stored.
func (s *SessionService) IsAuthenticated(ctx context.Context) bool {
	return s.credentials.IsAuthenticated(ctx)
}

// State returns the derived session state.
func (s *SessionService) State(ctx context.Context) domain.SessionState {
	return domain.SessionStateOf(s.IsAuthenticated(ctx))
}

func (s *SessionService) notify(level driven.NotifyLevel, message string) {
	if s.notifier != nil {
		s.notifier.Notify(level, message)
	}
}
