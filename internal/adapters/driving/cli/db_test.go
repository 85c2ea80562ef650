package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

func TestDBCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(dbCmd.Commands()))
	for _, c := range dbCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"create", "delete", "list", "dsn", "tables"}, names)
}

func TestDBCreateCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "db", "create")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestDBCmd_NoService(t *testing.T) {
	clearServices(t)

	_, err := executeCommand(t, "db", "create", "t.db")

	assert.ErrorIs(t, err, errNoDatabase)
}

func TestDBCreateAndDelete(t *testing.T) {
	store := setupTestServices(t)
	path := filepath.Join(store.DataDir(), "t.db")

	out, err := executeCommand(t, "db", "create", "t.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Created t.db")
	assert.FileExists(t, path)

	out, err = executeCommand(t, "db", "delete", "t.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted t.db")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDBListCmd(t *testing.T) {
	t.Run("empty data directory", func(t *testing.T) {
		setupTestServices(t)

		out, err := executeCommand(t, "db", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "No databases found.")
	})

	t.Run("lists files as TSV when not a terminal", func(t *testing.T) {
		clearServices(t)
		databaseService = &mockDatabaseService{files: []domain.DatabaseFile{
			{Name: "a.db", Size: 2048, ModTime: time.Now().Add(-time.Hour)},
			{Name: "t.db"},
		}}

		out, err := executeCommand(t, "db", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "NAME\tSIZE\tMODIFIED\n")
		assert.Contains(t, out, "a.db\t2.0 KiB\t1 hour ago\n")
		assert.Contains(t, out, "t.db\tempty\t-\n")
	})
}

func TestDBDSNCmd(t *testing.T) {
	store := setupTestServices(t)

	out, err := executeCommand(t, "db", "dsn", "t.db")

	require.NoError(t, err)
	assert.Equal(t, store.ConnectionString("t.db")+"\n", out)
}

func TestDBTablesCmd(t *testing.T) {
	setupTestServices(t)
	_, err := executeCommand(t, "table", "create", "t.db", "CREATE TABLE kv (k TEXT, v INTEGER)")
	require.NoError(t, err)

	out, err := executeCommand(t, "db", "tables", "t.db")

	require.NoError(t, err)
	assert.Equal(t, "kv\n", out)
}
