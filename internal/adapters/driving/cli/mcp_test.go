package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sqlitedb/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_NoService(t *testing.T) {
	clearServices(t)

	_, err := executeCommand(t, "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingDatabaseService)
}
