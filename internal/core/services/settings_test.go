package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sqlitedb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, svc.GetDefaults(), *settings)
}

func TestSettingsService_Get_FromStore(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyDataDir:       "/srv/data",
		KeyQueryTimeout:  int64(5),
		KeyTableTimeout:  int64(600),
		KeyLogFile:       "/var/log/sqlitedb.log",
		KeyLogMaxBackups: int64(0),
		KeyLogVerbose:    true,
	})
	svc := NewSettingsService(store)

	settings, err := svc.Get()

	require.NoError(t, err)
	assert.Equal(t, "/srv/data", settings.Storage.DataDir)
	assert.Equal(t, 5*time.Second, settings.Storage.QueryTimeout)
	assert.Equal(t, 10*time.Minute, settings.Storage.TableTimeout)
	assert.Equal(t, "/var/log/sqlitedb.log", settings.Log.File)
	assert.Equal(t, domain.DefaultLogMaxSizeMB, settings.Log.MaxSizeMB)
	assert.Equal(t, 0, settings.Log.MaxBackups)
	assert.True(t, settings.Log.Verbose)
}

func TestSettingsService_Get_InvalidStoredValue(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeyQueryTimeout: int64(0)})
	svc := NewSettingsService(store)

	_, err := svc.Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr error
	}{
		{"data dir", KeyDataDir, "Data2", "Data2", nil},
		{"empty data dir", KeyDataDir, "", nil, domain.ErrInvalidInput},
		{"query timeout", KeyQueryTimeout, "15", 15, nil},
		{"zero query timeout", KeyQueryTimeout, "0", nil, domain.ErrInvalidInput},
		{"non-numeric timeout", KeyTableTimeout, "soon", nil, domain.ErrInvalidInput},
		{"zero backups", KeyLogMaxBackups, "0", 0, nil},
		{"negative size", KeyLogMaxSizeMB, "-1", nil, domain.ErrInvalidInput},
		{"verbose", KeyLogVerbose, "true", true, nil},
		{"bad bool", KeyLogVerbose, "maybe", nil, domain.ErrInvalidInput},
		{"log file", KeyLogFile, "x.log", "x.log", nil},
		{"unknown key", "search.mode", "hybrid", nil, domain.ErrUnknownSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewSettingsService(memory.NewConfigStore(nil))

			err := svc.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, ok := svc.Value(tt.key)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			got, ok := svc.Value(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))
	settings := svc.GetDefaults()
	settings.Storage.DataDir = "/tmp/dbs"
	settings.Storage.TableTimeout = 45 * time.Second
	settings.Log.Verbose = true

	require.NoError(t, svc.Save(&settings))

	loaded, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *loaded)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))
	settings := svc.GetDefaults()
	settings.Storage.DataDir = ""

	assert.ErrorIs(t, svc.Save(&settings), domain.ErrInvalidInput)
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	store := memory.NewConfigStore(nil)
	store.FailWrites(errors.New("read-only file system"))
	svc := NewSettingsService(store)
	settings := svc.GetDefaults()

	err := svc.Save(&settings)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save data.dir")
}

func TestSettingsService_KeysAndPath(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore(nil))

	assert.Equal(t, []string{
		KeyDataDir, KeyQueryTimeout, KeyTableTimeout,
		KeyLogFile, KeyLogMaxSizeMB, KeyLogMaxBackups, KeyLogVerbose,
	}, svc.Keys())
	assert.Equal(t, ":memory:", svc.Path())
}

func TestSettingsService_NoStore(t *testing.T) {
	svc := NewSettingsService(nil)

	_, err := svc.Get()
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, svc.Set(KeyDataDir, "x"), domain.ErrNotImplemented)
	assert.Equal(t, "", svc.Path())
}
