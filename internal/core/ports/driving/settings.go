package driving

import "github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"

// SettingsService manages client settings.
type SettingsService interface {
	// Get resolves current settings: stored values over defaults.
	Get() (*domain.ClientSettings, error)

	// Set validates and persists a single setting by key.
	Set(key, value string) error

	// Keys returns every recognised setting key.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.ClientSettings
}
