package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driven"
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDataDir       = "data.dir"
	KeyQueryTimeout  = "query.timeout_seconds"
	KeyTableTimeout  = "query.table_timeout_seconds"
	KeyLogFile       = "log.file"
	KeyLogMaxSizeMB  = "log.max_size_mb"
	KeyLogMaxBackups = "log.max_backups"
	KeyLogVerbose    = "log.verbose"
)

type settingKind int

const (
	kindString settingKind = iota
	kindPositiveInt
	kindNonNegativeInt
	kindBool
)

// settingKeys lists the recognised keys in display order.
var settingKeys = []struct {
	key  string
	kind settingKind
}{
	{KeyDataDir, kindString},
	{KeyQueryTimeout, kindPositiveInt},
	{KeyTableTimeout, kindPositiveInt},
	{KeyLogFile, kindString},
	{KeyLogMaxSizeMB, kindNonNegativeInt},
	{KeyLogMaxBackups, kindNonNegativeInt},
	{KeyLogVerbose, kindBool},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, falling back to defaults
// for any key that is not set.
func (s *SettingsService) Get() (*domain.Settings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Storage: domain.StorageSettings{
			DataDir:      s.getString(KeyDataDir, defaults.Storage.DataDir),
			QueryTimeout: s.getSeconds(KeyQueryTimeout, defaults.Storage.QueryTimeout),
			TableTimeout: s.getSeconds(KeyTableTimeout, defaults.Storage.TableTimeout),
		},
		Log: domain.LogSettings{
			File:       s.configStore.GetString(KeyLogFile),
			MaxSizeMB:  s.getInt(KeyLogMaxSizeMB, defaults.Log.MaxSizeMB),
			MaxBackups: s.getInt(KeyLogMaxBackups, defaults.Log.MaxBackups),
			Verbose:    s.configStore.GetBool(KeyLogVerbose),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyDataDir, settings.Storage.DataDir},
		{KeyQueryTimeout, int(settings.Storage.QueryTimeout / time.Second)},
		{KeyTableTimeout, int(settings.Storage.TableTimeout / time.Second)},
		{KeyLogFile, settings.Log.File},
		{KeyLogMaxSizeMB, settings.Log.MaxSizeMB},
		{KeyLogMaxBackups, settings.Log.MaxBackups},
		{KeyLogVerbose, settings.Log.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Value returns the raw stored value of a key.
func (s *SettingsService) Value(key string) (any, bool) {
	if s.configStore == nil {
		return nil, false
	}
	return s.configStore.Get(key)
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	kind, ok := kindOf(key)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	parsed, err := parseSetting(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	if key == KeyDataDir && value == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, parsed)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func kindOf(key string) (settingKind, bool) {
	for _, k := range settingKeys {
		if k.key == key {
			return k.kind, true
		}
	}
	return 0, false
}

func parseSetting(kind settingKind, value string) (any, error) {
	switch kind {
	case kindPositiveInt, kindNonNegativeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		if n < 0 || (kind == kindPositiveInt && n == 0) {
			return nil, fmt.Errorf("%d is out of range", n)
		}
		return n, nil
	case kindBool:
		return strconv.ParseBool(value)
	default:
		return value, nil
	}
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getSeconds(key string, def time.Duration) time.Duration {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Second
}
