package changelog

import "slices"

// ColumnSpec names a column to select. Computed columns hold a SQL
// expression (for example COUNT(*)) and are emitted without escaping.
type ColumnSpec struct {
	Name     string
	Computed bool
}

// Column returns a plain, escaped column.
func Column(name string) ColumnSpec {
	return ColumnSpec{Name: name}
}

// Computed returns a column emitted verbatim.
func Computed(expr string) ColumnSpec {
	return ColumnSpec{Name: expr, Computed: true}
}

// Columns returns plain column specs for the given names.
func Columns(names ...string) []ColumnSpec {
	cols := make([]ColumnSpec, len(names))
	for i, n := range names {
		cols[i] = Column(n)
	}
	return cols
}

// Statement describes a select against the migration history table.
//
// OrderBy tokens are "<name>" or "<name> <direction>". A nil Limit means no
// row limit; a set Limit must be non-negative. Validate does not check it and
// Generate renders the value as given.
type Statement struct {
	Columns []ColumnSpec
	Where   WhereClause
	OrderBy []string
	Limit   *int
}

// NewStatement returns a statement selecting cols.
func NewStatement(cols ...ColumnSpec) Statement {
	return Statement{Columns: slices.Clone(cols)}
}

// WithWhere returns a copy of the statement with the where clause set.
func (s Statement) WithWhere(w WhereClause) Statement {
	s.Where = w
	return s
}

// WithOrderBy returns a copy of the statement ordered by tokens.
func (s Statement) WithOrderBy(tokens ...string) Statement {
	s.OrderBy = slices.Clone(tokens)
	return s
}

// WithLimit returns a copy of the statement limited to n rows.
// n must be non-negative; callers map "no limit" to leaving Limit unset.
func (s Statement) WithLimit(n int) Statement {
	s.Limit = &n
	return s
}

// LimitValue returns the row limit and whether one is set.
func (s Statement) LimitValue() (int, bool) {
	if s.Limit == nil {
		return 0, false
	}
	return *s.Limit, true
}
