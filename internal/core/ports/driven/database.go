package driven

import (
	"context"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
)

// Database runs statements against named embedded database files.
// Every call opens its own connection and closes it before returning.
//
// Errors are explicit: a query that matches no rows returns
// domain.ErrNotFound, and a failed statement returns a *domain.QueryError.
type Database interface {
	// CreateFile creates the data directory and an empty database file.
	// An existing file is left untouched.
	CreateFile(name string) error

	// DeleteFile removes a database file and its sidecar files.
	// A missing file is not an error.
	DeleteFile(name string) error

	// ListFiles returns the database files in the data directory, by name.
	ListFiles() ([]domain.DatabaseFile, error)

	// ConnectionString returns the driver DSN for a database file.
	ConnectionString(name string) string

	// Exec runs a statement that returns no rows and reports rows affected.
	Exec(ctx context.Context, name, sql string) (int64, error)

	// QueryRow returns the first row as strings.
	QueryRow(ctx context.Context, name, sql string) ([]string, error)

	// QueryScalar returns the first column of the first row as a string.
	QueryScalar(ctx context.Context, name, sql string) (string, error)

	// QueryColumn returns the first column of every row, in row order.
	// Zero rows yields an empty, non-nil slice.
	QueryColumn(ctx context.Context, name, sql string) ([]string, error)

	// QueryTable returns the complete result set.
	QueryTable(ctx context.Context, name, sql string) (*domain.Table, error)

	// Tables lists the user tables of a database, by name.
	Tables(ctx context.Context, name string) ([]string, error)

	// Close closes any connection still held by an in-flight call.
	Close() error
}
