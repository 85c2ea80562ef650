package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driven"
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driving"
	"github.com/custodia-labs/sqlitedb/internal/logger"
)

// Ensure DatabaseService implements the interface.
var _ driving.DatabaseService = (*DatabaseService)(nil)

// Execute status codes.
const (
	StatusFailure = 0
	StatusSuccess = 1
)

// DatabaseService is the data-access facade. It converts every engine
// error into the sentinel value of the method's return type and logs it.
//
// Identifiers passed to DropTable and AddColumn are concatenated into
// SQL as-is. Callers are trusted.
type DatabaseService struct {
	db driven.Database
}

// NewDatabaseService creates a new database service.
func NewDatabaseService(db driven.Database) *DatabaseService {
	return &DatabaseService{db: db}
}

// CreateFile creates the data directory and the named database file
// if they do not exist.
func (s *DatabaseService) CreateFile(name string) {
	if !s.available("CreateFile") {
		return
	}
	if err := s.db.CreateFile(name); err != nil {
		logger.Error("CreateFile(%s)Err:%v", name, err)
	}
}

// DeleteFile deletes the named database file if it exists.
func (s *DatabaseService) DeleteFile(name string) {
	if !s.available("DeleteFile") {
		return
	}
	if err := s.db.DeleteFile(name); err != nil {
		logger.Error("DeleteFile(%s)Err:%v", name, err)
	}
}

// ConnectionString returns the connection descriptor for a database file.
func (s *DatabaseService) ConnectionString(name string) string {
	if !s.available("ConnectionString") {
		return ""
	}
	return s.db.ConnectionString(name)
}

// CreateTable runs a CREATE TABLE statement.
func (s *DatabaseService) CreateTable(ctx context.Context, sql, name string) bool {
	return s.exec(ctx, sql, name)
}

// DropTable drops a table if it exists.
func (s *DatabaseService) DropTable(ctx context.Context, table, name string) bool {
	return s.exec(ctx, "DROP TABLE IF EXISTS "+table, name)
}

// AddColumn adds a column of the given type to a table.
func (s *DatabaseService) AddColumn(ctx context.Context, table, column, columnType, name string) bool {
	return s.exec(ctx, "ALTER TABLE "+table+" ADD COLUMN "+column+" "+columnType, name)
}

// Execute runs a statement and returns StatusSuccess or StatusFailure.
// The affected-row count is deliberately not reported.
func (s *DatabaseService) Execute(ctx context.Context, sql, name string) int {
	if s.exec(ctx, sql, name) {
		return StatusSuccess
	}
	return StatusFailure
}

// Row returns the first row of a query as strings.
// Returns nil both when no row matched and when the query failed.
func (s *DatabaseService) Row(ctx context.Context, sql, name string) []string {
	if !s.available("Row") {
		return nil
	}
	row, err := s.db.QueryRow(ctx, name, sql)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("no row for %s", sql)
		} else {
			logger.Error("%v", err)
		}
		return nil
	}
	return row
}

// Scalar returns the first value of the first row as a string.
// Returns "" when no row matched and when the query failed. Unlike the
// other queries it does not report failures at error level.
func (s *DatabaseService) Scalar(ctx context.Context, sql, name string) string {
	if !s.available("Scalar") {
		return ""
	}
	val, err := s.db.QueryScalar(ctx, name, sql)
	if err != nil {
		logger.Debug("%v", err)
		return ""
	}
	return val
}

// Column returns the first column of every row, in row order.
// Zero rows yields an empty slice; failure yields nil.
func (s *DatabaseService) Column(ctx context.Context, sql, name string) []string {
	if !s.available("Column") {
		return nil
	}
	col, err := s.db.QueryColumn(ctx, name, sql)
	if err != nil {
		logger.Error("%v", err)
		return nil
	}
	return col
}

// Table returns the full result set, or nil on failure.
func (s *DatabaseService) Table(ctx context.Context, sql, name string) *domain.Table {
	if !s.available("Table") {
		return nil
	}
	table, err := s.db.QueryTable(ctx, name, sql)
	if err != nil {
		logger.Error("%v", err)
		return nil
	}
	return table
}

// ListDatabases returns the database files in the data directory,
// or nil on failure.
func (s *DatabaseService) ListDatabases() []domain.DatabaseFile {
	if !s.available("ListDatabases") {
		return nil
	}
	files, err := s.db.ListFiles()
	if err != nil {
		logger.Error("ListDatabases()Err:%v", err)
		return nil
	}
	return files
}

// Tables returns the user tables of a database, or nil on failure.
func (s *DatabaseService) Tables(ctx context.Context, name string) []string {
	if !s.available("Tables") {
		return nil
	}
	tables, err := s.db.Tables(ctx, name)
	if err != nil {
		logger.Error("%v", err)
		return nil
	}
	return tables
}

// CloseConnection closes any live connection. Failures are logged.
func (s *DatabaseService) CloseConnection() {
	if s.db == nil {
		return
	}
	if err := s.db.Close(); err != nil {
		logger.Error("closeConnErr:%v", err)
	}
}

// exec runs a statement with no result rows and reports success.
func (s *DatabaseService) exec(ctx context.Context, sql, name string) bool {
	if !s.available("Execute") {
		return false
	}
	if _, err := s.db.Exec(ctx, name, sql); err != nil {
		logger.Error("%v", err)
		return false
	}
	return true
}

// available reports whether an engine is configured, logging if not.
func (s *DatabaseService) available(op string) bool {
	if s.db == nil {
		logger.Error("%s: %v", op, domain.ErrNotImplemented)
		return false
	}
	return true
}
