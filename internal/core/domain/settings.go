package domain

// ClientSettings holds everything needed to construct the admin API client.
type ClientSettings struct {
	API     APISettings
	Auth    AuthSettings
	Storage StorageSettings
	Verbose bool
}

// APISettings configures the remote admin API.
type APISettings struct {
	// BaseURL is the single origin every request path is relative to.
	BaseURL string
	// LoginPath is the public login endpoint.
	LoginPath string
	// LogoutPath is the remote logout notification endpoint.
	LogoutPath string
	// TokenField is the gjson path of the token in the login response.
	TokenField string
	// RateLimit is the sustained requests per second for authenticated calls.
	// Zero disables client-side limiting.
	RateLimit float64
	// RateBurst is the limiter's burst size.
	RateBurst int
}

// AuthSettings configures session-loss handling.
type AuthSettings struct {
	// LoginPath is where the client navigates when the session is lost.
	LoginPath string
}

// StorageSettings configures credential persistence.
type StorageSettings struct {
	// Key is the logical key shared by every storage tier.
	Key string
	// DataDir holds the durable tier database and the fallback token file.
	// Empty means ~/.brbadmin/data.
	DataDir string
}

// DefaultClientSettings returns settings with sensible defaults.
func DefaultClientSettings() ClientSettings {
	return ClientSettings{
		API: APISettings{
			BaseURL:    "http://localhost:8000/api",
			LoginPath:  "/auth/admin/login/",
			LogoutPath: "/auth/admin/logout/",
			TokenField: "token",
			RateLimit:  0,
			RateBurst:  1,
		},
		Auth: AuthSettings{
			LoginPath: "/login",
		},
		Storage: StorageSettings{
			Key: "brb_admin_token",
		},
	}
}

// IsRateLimited returns true if client-side rate limiting is enabled.
func (s APISettings) IsRateLimited() bool {
	return s.RateLimit > 0
}
