// Package mcp provides an MCP (Model Context Protocol) server adapter for sqlitedb.
// It lets AI assistants run statements and queries against local database files.
package mcp

import "errors"

// ErrMissingDatabaseService is returned when the database service is not provided.
var ErrMissingDatabaseService = errors.New("mcp: database service is required")
