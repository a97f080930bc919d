package domain

// SessionState is the session as observed by the client.
// It is always derived from the credential store and never persisted.
type SessionState string

// Session states.
const (
	// SessionAnonymous means no credential is stored.
	SessionAnonymous SessionState = "anonymous"

	// SessionAuthenticated means a credential is stored.
	SessionAuthenticated SessionState = "authenticated"
)

// SessionStateOf derives the session state from credential presence.
func SessionStateOf(authenticated bool) SessionState {
	if authenticated {
		return SessionAuthenticated
	}
	return SessionAnonymous
}

// LoginRequest is the body sent to the admin login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// LoginResult describes a successful login.
type LoginResult struct {
	// Credential is the newly minted bearer token.
	Credential Credential
	// Raw is the full login response body, for callers that need
	// the profile fields the server returns alongside the token.
	Raw []byte
}
