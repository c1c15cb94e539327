package query

import "fmt"

// ConnectionError indicates the database engine for an identity could
// not be established or a connection lease could not be acquired.
// Connection failures are never retried by this package.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StatementError indicates a statement was malformed or rejected by the
// server.
type StatementError struct {
	Stmt string
	Err  error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement failed: %v", e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// SchemaError indicates the result set is inconsistent with its own
// column metadata, e.g. a row whose arity disagrees with the column
// count or a value that cannot carry its mapped type. It points at a
// driver or query inconsistency, not a recoverable caller mistake.
type SchemaError struct {
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema mismatch on column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("schema mismatch: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
