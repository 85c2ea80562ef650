package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a query matched no rows.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownSetting indicates a configuration key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)

// QueryError records a failed statement and the operation that ran it.
type QueryError struct {
	// Op is the name of the operation, e.g. "Exec".
	Op string

	// SQL is the statement text as supplied by the caller.
	SQL string

	// Err is the underlying failure.
	Err error
}

// NewQueryError wraps err for the given operation and statement.
func NewQueryError(op, sql string, err error) *QueryError {
	return &QueryError{Op: op, SQL: sql, Err: err}
}

// Error renders the error in the "Op(SQL)Err:message" log format.
func (e *QueryError) Error() string {
	return fmt.Sprintf("%s(%s)Err:%v", e.Op, e.SQL, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}
