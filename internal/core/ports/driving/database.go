package driving

import (
	"context"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

// DatabaseService is the data-access facade over embedded database files.
//
// No error crosses this boundary. Failures are logged and reported through
// each method's sentinel value: false, 0, nil, or the empty string.
type DatabaseService interface {
	// CreateFile creates the named database file if it does not exist.
	CreateFile(name string)

	// DeleteFile deletes the named database file if it exists.
	DeleteFile(name string)

	// ConnectionString returns the connection descriptor for a file.
	ConnectionString(name string) string

	// CreateTable runs a CREATE TABLE statement. Returns true on success.
	CreateTable(ctx context.Context, sql, name string) bool

	// DropTable drops a table if it exists. Returns true on success.
	DropTable(ctx context.Context, table, name string) bool

	// AddColumn adds a column to a table. Returns true on success.
	AddColumn(ctx context.Context, table, column, columnType, name string) bool

	// Execute runs a statement with no result rows.
	// Returns 1 on success and 0 on failure, never the affected-row count.
	Execute(ctx context.Context, sql, name string) int

	// Row returns the first row as strings, or nil if no row matched
	// or the query failed.
	Row(ctx context.Context, sql, name string) []string

	// Scalar returns the first value of the first row, or the empty
	// string if no row matched or the query failed.
	Scalar(ctx context.Context, sql, name string) string

	// Column returns the first column of every row, or nil on failure.
	Column(ctx context.Context, sql, name string) []string

	// Table returns the full result set, or nil on failure.
	Table(ctx context.Context, sql, name string) *domain.Table

	// ListDatabases returns the database files in the data directory.
	ListDatabases() []domain.DatabaseFile

	// Tables returns the user tables of a database, or nil on failure.
	Tables(ctx context.Context, name string) []string

	// CloseConnection closes any live connection.
	CloseConnection()
}
