package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
)

// Ensure EnvOverlay implements the interface.
var _ driven.ConfigStore = (*EnvOverlay)(nil)

// EnvKeys maps configuration keys to the environment variables that override them.
var EnvKeys = map[string]string{
	"api.base_url":     "BRB_API_BASE_URL",
	"api.login_path":   "BRB_API_LOGIN_PATH",
	"api.logout_path":  "BRB_API_LOGOUT_PATH",
	"api.token_field":  "BRB_API_TOKEN_FIELD",
	"api.rate_limit":   "BRB_API_RATE_LIMIT",
	"api.rate_burst":   "BRB_API_RATE_BURST",
	"auth.login_path":  "BRB_AUTH_LOGIN_PATH",
	"storage.key":      "BRB_STORAGE_KEY",
	"storage.data_dir": "BRB_DATA_DIR",
	"log.verbose":      "BRB_VERBOSE",
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// EnvOverlay is a ConfigStore whose reads prefer BRB_* environment variables
// over the wrapped store. Writes always go to the wrapped store.
type EnvOverlay struct {
	base   driven.ConfigStore
	lookup func(string) (string, bool)
}

// NewEnvOverlay wraps base with environment overrides.
// lookup defaults to os.LookupEnv.
func NewEnvOverlay(base driven.ConfigStore, lookup func(string) (string, bool)) *EnvOverlay {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvOverlay{base: base, lookup: lookup}
}

// env returns the trimmed override for key, if one is set and non-empty.
func (o *EnvOverlay) env(key string) (string, bool) {
	name, ok := EnvKeys[key]
	if !ok {
		return "", false
	}
	value, ok := o.lookup(name)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// Get retrieves a value, preferring the environment.
func (o *EnvOverlay) Get(key string) (any, bool) {
	if v, ok := o.env(key); ok {
		return v, true
	}
	return o.base.Get(key)
}

// GetString retrieves a string value, preferring the environment.
func (o *EnvOverlay) GetString(key string) string {
	if v, ok := o.env(key); ok {
		return v
	}
	return o.base.GetString(key)
}

// GetInt retrieves an integer value. An unparsable override is ignored.
func (o *EnvOverlay) GetInt(key string) int {
	if v, ok := o.env(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return o.base.GetInt(key)
}

// GetFloat retrieves a numeric value. An unparsable override is ignored.
func (o *EnvOverlay) GetFloat(key string) float64 {
	if v, ok := o.env(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return o.base.GetFloat(key)
}

// GetBool retrieves a boolean value. An unparsable override is ignored.
func (o *EnvOverlay) GetBool(key string) bool {
	if v, ok := o.env(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return o.base.GetBool(key)
}

// Keys returns the union of stored keys and keys overridden by the environment.
func (o *EnvOverlay) Keys() []string {
	seen := make(map[string]bool)
	keys := o.base.Keys()
	for _, k := range keys {
		seen[k] = true
	}
	for k := range EnvKeys {
		if _, ok := o.env(k); ok && !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Overridden reports whether key is currently set from the environment.
func (o *EnvOverlay) Overridden(key string) bool {
	_, ok := o.env(key)
	return ok
}

// Set writes to the wrapped store.
func (o *EnvOverlay) Set(key string, value any) error {
	return o.base.Set(key, value)
}

// Save persists the wrapped store.
func (o *EnvOverlay) Save() error {
	return o.base.Save()
}

// Load reloads the wrapped store.
func (o *EnvOverlay) Load() error {
	return o.base.Load()
}

// Path returns the wrapped store's path.
func (o *EnvOverlay) Path() string {
	return o.base.Path()
}
