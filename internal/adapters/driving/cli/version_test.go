package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_PrintsBuildDetails(t *testing.T) {
	original := version
	version = "1.4.0"
	defer func() { version = original }()

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "sqlitedb version 1.4.0\n")
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	original := version
	version = "dev"
	defer func() { version = original }()

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "sqlitedb version dev")
}

func TestModuleVersion_UnknownModule(t *testing.T) {
	assert.Empty(t, moduleVersion("example.invalid/not-a-dependency"))
}
