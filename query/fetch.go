package query

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// ColumnInfo is the driver metadata for one result column.
type ColumnInfo struct {
	// Name of the column as returned by the server.
	Name string
	// TypeCode is the MySQL wire protocol type code, 0 when the driver
	// reports a type this package does not recognize.
	TypeCode int
}

// RawQueryResult is the untyped outcome of one executed statement:
// column metadata in result order plus the full row set. Every row is
// positionally aligned with ColumnInfo.
type RawQueryResult struct {
	ColumnInfo []ColumnInfo
	Rows       [][]interface{}
}

// Database is the cached engine for one identity. Obtain instances
// through Registry, never directly.
type Database struct {
	Project   string
	Extension string
	Host      string

	engine *sql.DB
}

// renderStatement accepts either a literal SQL string or a structured
// squirrel statement and returns the query text with its arguments.
func renderStatement(stmt interface{}) (string, []interface{}, error) {
	switch s := stmt.(type) {
	case string:
		return s, nil, nil
	case sq.Sqlizer:
		return s.ToSql()
	default:
		return "", nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}

// FetchRaw executes a statement and returns column metadata plus all
// rows. The statement runs inside a single read-only transaction on a
// dedicated connection lease; the lease is released on every exit path.
// The call blocks until the full result set is read, there is no
// pagination or streaming.
func (d *Database) FetchRaw(ctx context.Context, stmt interface{}) (*RawQueryResult, error) {
	queryText, args, err := renderStatement(stmt)
	if err != nil {
		return nil, &StatementError{Stmt: queryText, Err: err}
	}

	conn, err := d.engine.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Host: d.Host, Err: err}
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, &ConnectionError{Host: d.Host, Err: err}
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, queryText, args...)
	if err != nil {
		return nil, &StatementError{Stmt: queryText, Err: err}
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, &StatementError{Stmt: queryText, Err: err}
	}
	columnInfo := make([]ColumnInfo, len(columnTypes))
	for i, ct := range columnTypes {
		columnInfo[i] = ColumnInfo{
			Name:     ct.Name(),
			TypeCode: typeCodeForName(ct.DatabaseTypeName()),
		}
	}

	result := &RawQueryResult{ColumnInfo: columnInfo}
	for rows.Next() {
		values := make([]interface{}, len(columnInfo))
		scanTargets := make([]interface{}, len(columnInfo))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, &StatementError{Stmt: queryText, Err: err}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &StatementError{Stmt: queryText, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &ConnectionError{Host: d.Host, Err: err}
	}
	return result, nil
}

// Fetch executes a statement and materializes the result into a typed
// table. With StrModeDefault the string mode is inferred from the
// statement shape: structured statements resolve ambiguous text/binary
// columns as strings, raw SQL strings as binary (raw SQL cannot be
// assumed textual-safe). Overrides, keyed by column name, win over the
// mapped type unconditionally.
func (d *Database) Fetch(
	ctx context.Context,
	stmt interface{},
	mode StrMode,
	overrides map[string]SemanticType,
) (*TypedTable, error) {
	if mode == StrModeDefault {
		if _, ok := stmt.(sq.Sqlizer); ok {
			mode = StrModeStr
		} else {
			mode = StrModeBytes
		}
	}
	raw, err := d.FetchRaw(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return Materialize(raw, mode, overrides)
}
