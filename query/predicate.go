package query

import (
	"reflect"

	sq "github.com/Masterminds/squirrel"
)

// Predicate is a single column filter condition, renderable to SQL.
type Predicate = sq.Sqlizer

// ColumnRef identifies a column by name and owning table. It is a plain
// value; predicate building never inspects the column's semantics.
type ColumnRef struct {
	Table string
	Name  string
}

func (c ColumnRef) String() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}

// Condition pairs a column with a candidate filter value. A nil value
// means no filter on that column.
type Condition struct {
	Column ColumnRef
	Value  interface{}
}

// BuildPredicate turns (column, value) into a filter condition: an
// equality predicate for a single atomic value, a membership predicate
// over the deduplicated candidates for a multi-valued sequence. Strings
// and byte slices are atomic values here, never sequences of filter
// candidates. Sequences containing non-comparable elements cannot be
// deduplicated and fall back to an equality predicate on the raw value.
func BuildPredicate(column ColumnRef, value interface{}) Predicate {
	if !isSequence(value) {
		return sq.Eq{column.String(): value}
	}
	candidates, ok := dedupCandidates(value)
	if !ok {
		// Elements cannot be deduplicated; keep the raw value in an
		// equality predicate rather than failing.
		return sq.Expr(column.String()+" = ?", value)
	}
	return sq.Eq{column.String(): candidates}
}

// isSequence reports whether value is a multi-valued sequence for
// predicate purposes. Strings and byte slices are single values.
func isSequence(value interface{}) bool {
	switch value.(type) {
	case string, []byte:
		return false
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return false
	}
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// dedupCandidates returns the sequence elements deduplicated in
// first-occurrence order, or ok=false when an element type is not
// comparable.
func dedupCandidates(value interface{}) ([]interface{}, bool) {
	rv := reflect.ValueOf(value)
	seen := make(map[interface{}]struct{}, rv.Len())
	candidates := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		element := rv.Index(i).Interface()
		if element != nil && !reflect.TypeOf(element).Comparable() {
			return nil, false
		}
		if _, dup := seen[element]; dup {
			continue
		}
		seen[element] = struct{}{}
		candidates = append(candidates, element)
	}
	return candidates, true
}

// BuildPredicates applies BuildPredicate to each condition whose value
// is non-nil, preserving the input order of the kept conditions.
func BuildPredicates(conditions []Condition) []Predicate {
	predicates := make([]Predicate, 0, len(conditions))
	for _, condition := range conditions {
		if condition.Value == nil {
			continue
		}
		predicates = append(predicates, BuildPredicate(condition.Column, condition.Value))
	}
	return predicates
}
