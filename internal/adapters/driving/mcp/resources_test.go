package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

func TestExtractDatabaseName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid tables URI",
			uri:      "sqlitedb://databases/t.db/tables",
			expected: "t.db",
		},
		{
			name:     "invalid prefix",
			uri:      "file://databases/t.db/tables",
			expected: "",
		},
		{
			name:     "missing tables suffix",
			uri:      "sqlitedb://databases/t.db",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDatabaseName(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDatabasesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("no databases returns empty list", func(t *testing.T) {
		server := newTestServer(t, &mockDatabaseService{})

		result, err := server.handleDatabasesResource(ctx, makeReadResourceRequest("sqlitedb://databases"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	})

	t.Run("lists databases", func(t *testing.T) {
		server := newTestServer(t, &mockDatabaseService{files: []domain.DatabaseFile{
			{Name: "t.db", Size: 8192},
		}})

		result, err := server.handleDatabasesResource(ctx, makeReadResourceRequest("sqlitedb://databases"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"name": "t.db"`)
		assert.Contains(t, result.Contents[0].Text, `"size": 8192`)
	})
}

func TestServer_handleTablesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server := newTestServer(t, &mockDatabaseService{tables: []string{"kv"}})

		_, err := server.handleTablesResource(ctx, makeReadResourceRequest("sqlitedb://invalid/uri"))

		require.Error(t, err)
	})

	t.Run("failure returns not found", func(t *testing.T) {
		server := newTestServer(t, &mockDatabaseService{})

		_, err := server.handleTablesResource(ctx, makeReadResourceRequest("sqlitedb://databases/t.db/tables"))

		require.Error(t, err)
	})

	t.Run("lists tables", func(t *testing.T) {
		db := &mockDatabaseService{tables: []string{"kv", "users"}}
		server := newTestServer(t, db)

		result, err := server.handleTablesResource(ctx, makeReadResourceRequest("sqlitedb://databases/t.db/tables"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "t.db", db.lastName)
		assert.Contains(t, result.Contents[0].Text, `"kv"`)
		assert.Contains(t, result.Contents[0].Text, `"users"`)
	})
}
