// Package domain defines the core types for sqlitedb.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DatabaseFile: An embedded database file under the data directory
//   - Table: A fully materialised query result set
//   - Settings: Application settings loaded from the config file
//   - QueryError: A failed statement together with its SQL text
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
