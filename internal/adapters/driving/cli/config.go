package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoSettings = errors.New("settings service not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Known keys:
  data.dir                     directory holding database files
  query.timeout_seconds        timeout for statements and single-row queries
  query.table_timeout_seconds  timeout for full result-set queries
  log.file                     rotating log file (empty disables)
  log.max_size_mb              log size before rotation
  log.max_backups              rotated log files to keep
  log.verbose                  always print diagnostic messages`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a stored setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data directory: %s\n", settings.Storage.DataDir)
	cmd.Printf("  Query timeout: %s\n", settings.Storage.QueryTimeout)
	cmd.Printf("  Table timeout: %s\n", settings.Storage.TableTimeout)
	cmd.Println()

	cmd.Println("[Log]")
	if settings.Log.FileEnabled() {
		cmd.Printf("  File: %s\n", settings.Log.File)
		cmd.Printf("  Max size: %d MB\n", settings.Log.MaxSizeMB)
		cmd.Printf("  Max backups: %d\n", settings.Log.MaxBackups)
	} else {
		cmd.Printf("  File: (not set)\n")
	}
	cmd.Printf("  Verbose: %t\n", settings.Log.Verbose)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	val, ok := settingsService.Value(args[0])
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	cmd.Println(val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}
	cmd.Println(settingsService.Path())
	return nil
}
