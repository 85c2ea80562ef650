package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sqlitedb/internal/core/domain"
	"github.com/custodia-labs/sqlitedb/internal/core/ports/driven"
	"github.com/custodia-labs/sqlitedb/internal/logger"
)

const (
	driverName = "sqlite"

	// busyTimeoutMS is how long a connection waits on a locked database.
	busyTimeoutMS = 5000

	listTablesSQL = "SELECT name FROM sqlite_master " +
		"WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
)

// Operation names recorded in QueryError.Op.
const (
	opExec   = "Exec"
	opRow    = "QueryRow"
	opScalar = "QueryScalar"
	opColumn = "QueryColumn"
	opTable  = "QueryTable"
	opTables = "Tables"
)

// Options configures a Store.
type Options struct {
	// DataDir holds the database files. Defaults to domain.DefaultDataDir.
	DataDir string

	// QueryTimeout bounds ordinary statements.
	QueryTimeout time.Duration

	// TableTimeout bounds full result-set queries.
	TableTimeout time.Duration
}

// Store runs statements against database files in a data directory.
// It holds no connection between calls: each call opens, uses and closes
// its own.
type Store struct {
	dataDir      string
	queryTimeout time.Duration
	tableTimeout time.Duration

	mu   sync.Mutex
	live map[*sql.DB]string
}

var _ driven.Database = (*Store)(nil)

// NewStore creates a store. Zero-valued options take their defaults.
func NewStore(opts Options) *Store {
	if opts.DataDir == "" {
		opts.DataDir = domain.DefaultDataDir
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = domain.DefaultQueryTimeout
	}
	if opts.TableTimeout <= 0 {
		opts.TableTimeout = domain.DefaultTableTimeout
	}

	return &Store{
		dataDir:      opts.DataDir,
		queryTimeout: opts.QueryTimeout,
		tableTimeout: opts.TableTimeout,
		live:         make(map[*sql.DB]string),
	}
}

// DataDir returns the data directory.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Path returns the file path of a database.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// ConnectionString returns the driver DSN for a database file.
func (s *Store) ConnectionString(name string) string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", s.Path(name), busyTimeoutMS)
}

// ==================== File Management ====================

// CreateFile creates the data directory and an empty database file.
// SQLite treats a zero-length file as an empty database.
func (s *Store) CreateFile(name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	path := s.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating database file: %w", err)
	}

	logger.Debug("created database file %s", path)
	return f.Close()
}

// DeleteFile removes a database file together with any sidecar files.
func (s *Store) DeleteFile(name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	path := s.Path(name)
	if err := removeIfExists(path); err != nil {
		return fmt.Errorf("deleting database file: %w", err)
	}
	for _, suffix := range domain.SidecarSuffixes() {
		if err := removeIfExists(path + suffix); err != nil {
			return fmt.Errorf("deleting %s file: %w", suffix, err)
		}
	}

	logger.Debug("deleted database file %s", path)
	return nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ListFiles returns the database files in the data directory.
// A missing data directory yields an empty list.
func (s *Store) ListFiles() ([]domain.DatabaseFile, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.DatabaseFile{}, nil
		}
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	files := make([]domain.DatabaseFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || domain.IsSidecar(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		files = append(files, domain.DatabaseFile{
			Name:    entry.Name(),
			Path:    s.Path(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// ==================== Connection Lifecycle ====================

// open acquires a connection to the named database. The returned
// connection is live until passed to release.
func (s *Store) open(ctx context.Context, name string) (*sql.DB, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, s.ConnectionString(name))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", name, err)
	}

	s.mu.Lock()
	s.live[db] = name
	s.mu.Unlock()

	logger.Debug("opened connection to %s", name)
	return db, nil
}

// release closes a connection acquired by open. A connection already
// closed by Close is skipped.
func (s *Store) release(db *sql.DB) {
	s.mu.Lock()
	name, ok := s.live[db]
	delete(s.live, db)
	s.mu.Unlock()

	if !ok {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("closing connection to %s: %v", name, err)
		return
	}
	logger.Debug("closed connection to %s", name)
}

// withConn runs fn on a fresh connection bounded by timeout.
// Cleanup is registered only once the connection has been acquired.
func (s *Store) withConn(
	ctx context.Context,
	name string,
	timeout time.Duration,
	fn func(ctx context.Context, db *sql.DB) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := s.open(ctx, name)
	if err != nil {
		return err
	}
	defer s.release(db)

	return fn(ctx, db)
}

// LiveConnections returns the number of connections currently open.
func (s *Store) LiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// Close closes every connection still held by an in-flight call.
// It is safe to call when no connection is open.
func (s *Store) Close() error {
	s.mu.Lock()
	live := s.live
	s.live = make(map[*sql.DB]string)
	s.mu.Unlock()

	var errs []error
	for db, name := range live {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection to %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// ==================== Statements ====================

// Exec runs a statement that returns no rows and reports rows affected.
func (s *Store) Exec(ctx context.Context, name, query string) (int64, error) {
	var affected int64
	err := s.withConn(ctx, name, s.queryTimeout, func(ctx context.Context, db *sql.DB) error {
		res, err := db.ExecContext(ctx, query)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, domain.NewQueryError(opExec, query, err)
	}
	return affected, nil
}

// QueryRow returns the first row with every value rendered as a string.
func (s *Store) QueryRow(ctx context.Context, name, query string) ([]string, error) {
	var row []string
	err := s.withConn(ctx, name, s.queryTimeout, func(ctx context.Context, db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return domain.ErrNotFound
		}

		values, err := scanRow(rows, len(cols))
		if err != nil {
			return err
		}
		row = values.Strings()
		return nil
	})
	if err != nil {
		return nil, domain.NewQueryError(opRow, query, err)
	}
	return row, nil
}

// QueryScalar returns the first column of the first row as a string.
// A NULL value yields the empty string.
func (s *Store) QueryScalar(ctx context.Context, name, query string) (string, error) {
	var value string
	err := s.withConn(ctx, name, s.queryTimeout, func(ctx context.Context, db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return err
		}
		if len(cols) == 0 || !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return domain.ErrNotFound
		}

		values, err := scanRow(rows, len(cols))
		if err != nil {
			return err
		}
		value = domain.FormatValue(values[0])
		return nil
	})
	if err != nil {
		return "", domain.NewQueryError(opScalar, query, err)
	}
	return value, nil
}

// QueryColumn returns the first column of every row, in row order.
func (s *Store) QueryColumn(ctx context.Context, name, query string) ([]string, error) {
	column := []string{}
	err := s.withConn(ctx, name, s.queryTimeout, func(ctx context.Context, db *sql.DB) error {
		var err error
		column, err = queryColumn(ctx, db, query)
		return err
	})
	if err != nil {
		return nil, domain.NewQueryError(opColumn, query, err)
	}
	return column, nil
}

// QueryTable returns the complete result set. It runs under the table
// timeout rather than the query timeout.
func (s *Store) QueryTable(ctx context.Context, name, query string) (*domain.Table, error) {
	var table *domain.Table
	err := s.withConn(ctx, name, s.tableTimeout, func(ctx context.Context, db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		table, err = readTable(rows)
		return err
	})
	if err != nil {
		return nil, domain.NewQueryError(opTable, query, err)
	}
	return table, nil
}

// Tables lists the user tables of a database.
func (s *Store) Tables(ctx context.Context, name string) ([]string, error) {
	var tables []string
	err := s.withConn(ctx, name, s.queryTimeout, func(ctx context.Context, db *sql.DB) error {
		var err error
		tables, err = queryColumn(ctx, db, listTablesSQL)
		return err
	})
	if err != nil {
		return nil, domain.NewQueryError(opTables, listTablesSQL, err)
	}
	return tables, nil
}

// ==================== Scanning Helpers ====================

// queryColumn collects the first value of each row.
func queryColumn(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	column := []string{}
	if len(cols) == 0 {
		return column, nil
	}
	for rows.Next() {
		values, err := scanRow(rows, len(cols))
		if err != nil {
			return nil, err
		}
		column = append(column, domain.FormatValue(values[0]))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return column, nil
}

// readTable materialises every row along with the column metadata.
func readTable(rows *sql.Rows) (*domain.Table, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	table := &domain.Table{
		Columns: make([]domain.Column, len(types)),
		Rows:    []domain.Row{},
	}
	for i, ct := range types {
		nullable, _ := ct.Nullable()
		table.Columns[i] = domain.Column{
			Name:     ct.Name(),
			Type:     ct.DatabaseTypeName(),
			Nullable: nullable,
		}
	}

	for rows.Next() {
		values, err := scanRow(rows, len(types))
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// scanRow scans the current row into raw driver values.
func scanRow(rows *sql.Rows, n int) (domain.Row, error) {
	values := make(domain.Row, n)
	dest := make([]any, n)
	for i := range values {
		dest[i] = &values[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	return values, nil
}
