package query

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	datetimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// Column is one named, uniformly-typed column of a materialized result.
type Column struct {
	Name   string
	Type   SemanticType
	Values []interface{}
}

// TypedTable is a materialized query result: an ordered sequence of
// named, typed columns. Column order is exactly the order the server
// returned; two columns may share a name (self-joins) and remain
// distinguishable by position.
type TypedTable struct {
	columns []Column
}

// Columns returns the columns in result order.
func (t *TypedTable) Columns() []Column {
	return t.columns
}

// Column returns the first column with the given name.
func (t *TypedTable) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// NumColumns returns the column count.
func (t *TypedTable) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the row count.
func (t *TypedTable) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Values)
}

// Materialize combines a raw result, a string mode, and optional
// per-column type overrides into a typed table. An override for a
// column name wins over the mapped type unconditionally and applies to
// every column carrying that name. StrModeDefault resolves to
// StrModeStr.
//
// A row whose arity disagrees with the column metadata, or a value that
// cannot carry its resolved type, fails with a SchemaError.
func Materialize(
	raw *RawQueryResult,
	mode StrMode,
	overrides map[string]SemanticType,
) (*TypedTable, error) {
	if mode == StrModeDefault {
		mode = StrModeStr
	}

	columns := make([]Column, len(raw.ColumnInfo))
	for i, info := range raw.ColumnInfo {
		semanticType, overridden := overrides[info.Name]
		if !overridden {
			semanticType = MapTypeCode(info.TypeCode, mode)
		}
		columns[i] = Column{
			Name:   info.Name,
			Type:   semanticType,
			Values: make([]interface{}, 0, len(raw.Rows)),
		}
	}

	for rowIndex, row := range raw.Rows {
		if len(row) != len(columns) {
			err := fmt.Errorf("row %d has %d values for %d columns", rowIndex, len(row), len(columns))
			return nil, &SchemaError{Err: err}
		}
		for i, value := range row {
			cast, err := castValue(value, columns[i].Type)
			if err != nil {
				return nil, &SchemaError{Column: columns[i].Name, Err: err}
			}
			columns[i].Values = append(columns[i].Values, cast)
		}
	}

	return &TypedTable{columns: columns}, nil
}

// asString normalizes the two textual wire representations the driver
// produces.
func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

// castValue converts one scanned driver value to its semantic type.
// NULLs stay nil regardless of the column type.
func castValue(value interface{}, semanticType SemanticType) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	switch semanticType {
	case TypeInt64:
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case uint64:
			return int64(v), nil
		}
		if s, ok := asString(value); ok {
			return strconv.ParseInt(s, 10, 64)
		}
	case TypeFloat64:
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
		if s, ok := asString(value); ok {
			return strconv.ParseFloat(s, 64)
		}
	case TypeDecimal:
		switch v := value.(type) {
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		}
		if s, ok := asString(value); ok {
			return decimal.NewFromString(s)
		}
	case TypeDatetime:
		if v, ok := value.(time.Time); ok {
			return v, nil
		}
		if s, ok := asString(value); ok {
			return time.Parse(datetimeLayout, s)
		}
	case TypeDate:
		if v, ok := value.(time.Time); ok {
			return v, nil
		}
		if s, ok := asString(value); ok {
			return time.Parse(dateLayout, s)
		}
	case TypeString:
		if s, ok := asString(value); ok {
			return s, nil
		}
	case TypeBinary:
		switch v := value.(type) {
		case []byte:
			return v, nil
		case string:
			return []byte(v), nil
		}
	case TypeNull, TypeUnknown:
		return value, nil
	}
	return nil, fmt.Errorf("cannot materialize %T value as %s", value, semanticType)
}
