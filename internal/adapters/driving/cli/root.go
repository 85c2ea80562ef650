// Package cli provides the cobra command tree for sqlitedb.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sqlitedb/internal/core/ports/driving"
	"github.com/custodia-labs/sqlitedb/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services injected by the entry point, or by tests.
var (
	databaseService driving.DatabaseService
	settingsService driving.SettingsService
)

// Options carries the persistent flag values to the bootstrap function.
type Options struct {
	Verbose   bool
	DataDir   string
	ConfigDir string
	NoConfig  bool
}

// Services are the driving ports the commands run against.
type Services struct {
	Database driving.DatabaseService
	Settings driving.SettingsService
}

// BootstrapFunc builds the services once flags have been parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	bootstrap BootstrapFunc
	opts      Options
)

var errNoDatabase = errors.New("database service not configured")

var rootCmd = &cobra.Command{
	Use:   "sqlitedb",
	Short: "Run SQL against local SQLite database files",
	Long: `sqlitedb manages SQLite database files in a data directory and runs
statements and queries against them by file name.

exec prints a status code (1 or 0), and row, scalar and column print nothing
when a query fails or matches no rows.
table and query commands exit with an error when the statement fails.
Use --verbose to see why.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if databaseService != nil {
			databaseService.CloseConnection()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print diagnostic messages to stderr")
	flags.StringVar(&opts.DataDir, "data-dir", "", "directory holding database files (overrides config)")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "directory holding config.toml (default ~/.sqlitedb)")
	flags.BoolVar(&opts.NoConfig, "no-config", false, "ignore the config file and use defaults")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(_ *cobra.Command, _ []string) error {
	if opts.Verbose {
		logger.SetVerbose(true)
	}
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(opts)
	if err != nil {
		return err
	}
	databaseService = services.Database
	settingsService = services.Settings
	return nil
}

func requireDatabase() error {
	if databaseService == nil {
		return errNoDatabase
	}
	return nil
}
