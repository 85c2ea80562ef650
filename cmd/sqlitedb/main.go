// Command sqlitedb runs SQL against local SQLite database files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sqlitedb/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sqlitedb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sqlitedb/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sqlitedb/internal/adapters/driving/cli"
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driven"
	"github.com/custodia-labs/sqlitedb/internal/core/services"
	"github.com/custodia-labs/sqlitedb/internal/logger"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	err := cli.Execute(ctx)
	stop()
	if cerr := logger.CloseFile(); cerr != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the config store, settings, logger and database engine.
// Flag values override the stored settings.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	var configStore driven.ConfigStore
	if opts.NoConfig {
		configStore = memory.NewConfigStore(nil)
	} else {
		store, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		configStore = store
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if opts.DataDir != "" {
		settings.Storage.DataDir = opts.DataDir
	}
	if opts.Verbose {
		settings.Log.Verbose = true
	}

	logger.SetVerbose(settings.Log.Verbose)
	if settings.Log.FileEnabled() {
		if err := logger.SetFile(logger.FileOptions{
			Path:       settings.Log.File,
			MaxSizeMB:  settings.Log.MaxSizeMB,
			MaxBackups: settings.Log.MaxBackups,
		}); err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
	}

	logger.Section("Bootstrap")
	logger.Debug("config: %s", settingsService.Path())
	logger.Debug("data dir: %s", settings.Storage.DataDir)

	engine := sqlite.NewStore(sqlite.Options{
		DataDir:      settings.Storage.DataDir,
		QueryTimeout: settings.Storage.QueryTimeout,
		TableTimeout: settings.Storage.TableTimeout,
	})

	return &cli.Services{
		Database: services.NewDatabaseService(engine),
		Settings: settingsService,
	}, nil
}
