package domain

import (
	"fmt"
	"time"
)

// Default setting values.
const (
	// DefaultDataDir is the data directory, relative to the working directory.
	DefaultDataDir = "Data"

	// DefaultQueryTimeout bounds ordinary statements.
	DefaultQueryTimeout = 30 * time.Second

	// DefaultTableTimeout bounds full result-set queries, which may scan
	// large tables.
	DefaultTableTimeout = 120 * time.Second

	// DefaultLogMaxSizeMB is the size at which the log file is rotated.
	DefaultLogMaxSizeMB = 10

	// DefaultLogMaxBackups is the number of rotated log files kept.
	DefaultLogMaxBackups = 3
)

// StorageSettings controls where database files live and how long
// statements may run.
type StorageSettings struct {
	// DataDir is the directory holding database files.
	DataDir string

	// QueryTimeout bounds every statement except full result-set queries.
	QueryTimeout time.Duration

	// TableTimeout bounds full result-set queries.
	TableTimeout time.Duration
}

// Validate checks the storage settings.
func (s StorageSettings) Validate() error {
	if s.DataDir == "" {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidInput)
	}
	if s.QueryTimeout <= 0 {
		return fmt.Errorf("%w: query timeout must be positive", ErrInvalidInput)
	}
	if s.TableTimeout <= 0 {
		return fmt.Errorf("%w: table timeout must be positive", ErrInvalidInput)
	}
	return nil
}

// LogSettings controls diagnostic output.
type LogSettings struct {
	// File is an optional log file path. Empty disables file logging.
	File string

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept.
	MaxBackups int

	// Verbose enables debug output.
	Verbose bool
}

// FileEnabled returns true if a log file is configured.
func (l LogSettings) FileEnabled() bool {
	return l.File != ""
}

// Settings holds all application settings.
type Settings struct {
	Storage StorageSettings
	Log     LogSettings
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			DataDir:      DefaultDataDir,
			QueryTimeout: DefaultQueryTimeout,
			TableTimeout: DefaultTableTimeout,
		},
		Log: LogSettings{
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
	}
}

// Validate checks all settings.
func (s Settings) Validate() error {
	if err := s.Storage.Validate(); err != nil {
		return err
	}
	if s.Log.MaxSizeMB < 0 || s.Log.MaxBackups < 0 {
		return fmt.Errorf("%w: log rotation values must not be negative", ErrInvalidInput)
	}
	return nil
}
