package dialect

import (
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// Quoter escapes object names for one dialect under one quoting strategy.
// It is a small value type; copy it freely.
type Quoter struct {
	dialect  *Dialect
	strategy core.QuotingStrategy
}

// Dialect returns the dialect the quoter escapes for.
func (q Quoter) Dialect() *Dialect {
	return q.dialect
}

// Strategy returns the quoting strategy in effect.
func (q Quoter) Strategy() core.QuotingStrategy {
	return q.strategy
}

// MustQuote reports whether name has to be quoted under the strategy.
func (q Quoter) MustQuote(name string) bool {
	switch q.strategy {
	case core.QuotingAllObjects:
		return true
	case core.QuotingReservedWords:
		return q.dialect.IsReservedWord(name)
	default: // QuotingLegacy
		return q.dialect.IsReservedWord(name) || !isPlainIdentifier(name)
	}
}

// EscapeObjectName escapes a single object name.
// Empty names and the "*" wildcard are returned unchanged.
func (q Quoter) EscapeObjectName(name string) string {
	if name == "" || name == "*" {
		return name
	}
	if q.MustQuote(name) {
		return q.dialect.QuoteIdentifier(name)
	}
	return name
}

// EscapeColumnName escapes a column identifier.
func (q Quoter) EscapeColumnName(name string) string {
	return q.EscapeObjectName(strings.TrimSpace(name))
}

// EscapeTableName escapes a qualified table name. Empty parts are skipped and
// the catalog is only used when the dialect puts it in object names.
func (q Quoter) EscapeTableName(catalog, schema, table string) string {
	parts := make([]string, 0, 3)
	if catalog != "" && q.dialect.CatalogInObjectName {
		parts = append(parts, q.EscapeObjectName(catalog))
	}
	if schema != "" {
		parts = append(parts, q.EscapeObjectName(schema))
	}
	parts = append(parts, q.EscapeObjectName(table))
	return strings.Join(parts, ".")
}

// isPlainIdentifier matches [A-Za-z_][A-Za-z0-9_]*.
func isPlainIdentifier(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return name != ""
}
