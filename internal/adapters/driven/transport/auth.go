package transport

import (
	"context"
	"net/http"
	"path"
	"sync"

	"golang.org/x/oauth2"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// AuthInterceptor attaches the stored credential to authenticated requests
// and tears the session down when the server rejects it.
type AuthInterceptor struct {
	credentials driven.CredentialProvider
	navigator   driven.Navigator
	loginPath   string

	// mu serialises invalidation so concurrent 401s navigate at most once.
	mu sync.Mutex
}

// NewAuthInterceptor creates an interceptor that reads and clears credentials
// through provider and sends the operator to loginPath on session loss.
// navigator may be nil, in which case only the credential is cleared.
func NewAuthInterceptor(
	provider driven.CredentialProvider,
	navigator driven.Navigator,
	loginPath string,
) *AuthInterceptor {
	return &AuthInterceptor{
		credentials: provider,
		navigator:   navigator,
		loginPath:   loginPath,
	}
}

// BeforeRequest sets "Authorization: Bearer <credential>" when a credential exists.
// Without one the request goes out bare and the server decides.
func (a *AuthInterceptor) BeforeRequest(req *http.Request) error {
	credential, ok := a.credentials.Get(req.Context())
	if !ok {
		logger.Debug("no credential stored, sending %s %s without authorization", req.Method, req.URL.Path)
		return nil
	}
	token := &oauth2.Token{AccessToken: credential.String(), TokenType: "Bearer"}
	token.SetAuthHeader(req)
	return nil
}

// AfterResponse invalidates the session on an authentication failure and
// returns err unchanged so the caller still observes the failure.
func (a *AuthInterceptor) AfterResponse(req *http.Request, _ *driven.Response, err error) error {
	if !IsAuthenticationFailure(err) {
		return err
	}
	a.invalidate(req.Context())
	return err
}

// invalidate clears the credential and navigates to the login path unless the
// current location already is the login path. The location is read fresh on
// every call.
func (a *AuthInterceptor) invalidate(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// The request context may already be done; clearing must still happen.
	a.credentials.Clear(context.WithoutCancel(ctx))
	logger.Info("session rejected by server, credential cleared")

	if a.navigator == nil {
		return
	}
	if samePath(a.navigator.Location(), a.loginPath) {
		logger.Debug("already at %s, not navigating", a.loginPath)
		return
	}
	a.navigator.Navigate(a.loginPath)
}

// LoginPath returns the navigation target on session loss.
func (a *AuthInterceptor) LoginPath() string {
	return a.loginPath
}

func samePath(a, b string) bool {
	return cleanPath(a) == cleanPath(b)
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}
