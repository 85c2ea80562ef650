// Package sqlite provides the SQLite-based implementation of driven.Database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Connections
//
// The store holds no connection between calls. Every operation opens a
// connection to the named database file, runs one statement, reads its
// results to completion and closes the connection before returning. A
// connection is released only if it was actually acquired.
//
// # Data Location
//
// Database files live in a single data directory, by default ./Data
// relative to the working directory. Files are addressed by name.
//
// # Errors
//
// Failed statements are returned as *domain.QueryError. Queries that
// match no rows return an error wrapping domain.ErrNotFound.
package sqlite
