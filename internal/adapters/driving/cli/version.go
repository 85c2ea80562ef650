package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// sqliteDriver is the module path of the embedded database driver.
const sqliteDriver = "modernc.org/sqlite"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the sqlitedb version, the Go toolchain and platform, and the SQLite driver version.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) {
	cmd.Printf("sqlitedb version %s\n", version)
	cmd.Printf("  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if v := moduleVersion(sqliteDriver); v != "" {
		cmd.Printf("  driver: %s %s\n", sqliteDriver, v)
	}
}

// moduleVersion returns the version of a dependency compiled into the
// binary, or "" when build info or the module is unavailable.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}
