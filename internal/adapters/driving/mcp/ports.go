package mcp

import (
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Database is the data-access facade.
	Database driving.DatabaseService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Database == nil {
		return ErrMissingDatabaseService
	}
	return nil
}
