package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driving"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIBaseURL     = "api.base_url"
	keyAPILoginPath   = "api.login_path"
	keyAPILogoutPath  = "api.logout_path"
	keyAPITokenField  = "api.token_field"
	keyAPIRateLimit   = "api.rate_limit"
	keyAPIRateBurst   = "api.rate_burst"
	keyAuthLoginPath  = "auth.login_path"
	keyStorageKey     = "storage.key"
	keyStorageDataDir = "storage.data_dir"
	keyLogVerbose     = "log.verbose"
)

// settingParsers validate a raw value and convert it to the stored type.
var settingParsers = map[string]func(string) (any, error){
	keyAPIBaseURL:     parseBaseURL,
	keyAPILoginPath:   parseAPIPath,
	keyAPILogoutPath:  parseAPIPath,
	keyAPITokenField:  parseNonEmpty,
	keyAPIRateLimit:   parseRateLimit,
	keyAPIRateBurst:   parseRateBurst,
	keyAuthLoginPath:  parseAPIPath,
	keyStorageKey:     parseStorageKey,
	keyStorageDataDir: parseAny,
	keyLogVerbose:     parseBool,
}

// SettingsService manages client settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get resolves current client settings. Missing or invalid stored values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.ClientSettings, error) {
	defaults := domain.DefaultClientSettings()

	settings := &domain.ClientSettings{
		API: domain.APISettings{
			BaseURL:    s.getValid(keyAPIBaseURL, defaults.API.BaseURL),
			LoginPath:  s.getValid(keyAPILoginPath, defaults.API.LoginPath),
			LogoutPath: s.getValid(keyAPILogoutPath, defaults.API.LogoutPath),
			TokenField: s.getString(keyAPITokenField, defaults.API.TokenField),
			RateLimit:  s.getFloat(keyAPIRateLimit, defaults.API.RateLimit),
			RateBurst:  s.getInt(keyAPIRateBurst, defaults.API.RateBurst),
		},
		Auth: domain.AuthSettings{
			LoginPath: s.getValid(keyAuthLoginPath, defaults.Auth.LoginPath),
		},
		Storage: domain.StorageSettings{
			Key:     s.getValid(keyStorageKey, defaults.Storage.Key),
			DataDir: s.configStore.GetString(keyStorageDataDir), // empty selects the home default
		},
		Verbose: s.getBool(keyLogVerbose, defaults.Verbose),
	}

	if settings.API.RateLimit < 0 {
		settings.API.RateLimit = defaults.API.RateLimit
	}
	if settings.API.RateBurst < 1 {
		settings.API.RateBurst = defaults.API.RateBurst
	}

	return settings, nil
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	parse, ok := settingParsers[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	parsed, err := parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if o, ok := s.configStore.(overrider); ok && o.Overridden(key) {
		logger.Warn("%s saved, but the environment overrides it for this session", key)
	}
	return nil
}

// overrider is implemented by config stores layered over the environment.
type overrider interface {
	Overridden(key string) bool
}

// Keys returns every recognised setting key, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingParsers))
	for k := range settingParsers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.ClientSettings {
	return domain.DefaultClientSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getValid returns the stored string when it passes the key's parser.
func (s *SettingsService) getValid(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	if _, err := settingParsers[key](val); err != nil {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// Value parsers.

func parseBaseURL(v string) (any, error) {
	u, err := url.Parse(v)
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("must be an absolute http(s) URL, got %q", v)
	}
	return strings.TrimRight(v, "/"), nil
}

func parseAPIPath(v string) (any, error) {
	if !strings.HasPrefix(v, "/") {
		return nil, fmt.Errorf("must start with /, got %q", v)
	}
	return v, nil
}

func parseNonEmpty(v string) (any, error) {
	if v == "" {
		return nil, fmt.Errorf("must not be empty")
	}
	return v, nil
}

func parseStorageKey(v string) (any, error) {
	if v == "" || strings.ContainsAny(v, `/\`) || v == "." || v == ".." {
		return nil, fmt.Errorf("must be a plain name, got %q", v)
	}
	return v, nil
}

func parseRateLimit(v string) (any, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	if f < 0 {
		return nil, fmt.Errorf("must not be negative")
	}
	return f, nil
}

func parseRateBurst(v string) (any, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("must be at least 1")
	}
	return n, nil
}

func parseBool(v string) (any, error) {
	return strconv.ParseBool(v)
}

func parseAny(v string) (any, error) {
	return v, nil
}
