package driving

import "github.com/custodia-labs/sqlitedb/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// Value returns the raw stored value of a setting key.
	Value(key string) (any, bool)

	// Set parses and stores a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns the configuration file path.
	Path() string
}
