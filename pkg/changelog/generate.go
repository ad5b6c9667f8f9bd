package changelog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

// Database is the dialect capability surface Generate reads from.
// *dialect.Session implements it.
type Database interface {
	CatalogName() string
	SchemaName() string
	HistoryTableName() string
	QuotingStrategy() core.QuotingStrategy
	Pagination() core.PaginationFamily
	Quoter(strategy core.QuotingStrategy) dialect.Quoter
}

// Generate renders stmt for db. It always returns exactly one statement.
//
// Callers are expected to have run Validate first. Errors only come from the
// where clause and are returned wrapped.
func Generate(stmt Statement, db Database) ([]SQL, error) {
	// History table objects are always referenced with LEGACY quoting.
	q := db.Quoter(core.QuotingLegacy)
	family := db.Pagination()
	limit, hasLimit := stmt.LimitValue()

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if hasLimit && family == core.PaginationTop {
		sb.WriteString("TOP ")
		sb.WriteString(strconv.Itoa(limit))
		sb.WriteByte(' ')
	}
	sb.WriteString(renderColumns(stmt.Columns, q))
	sb.WriteString(" FROM ")
	sb.WriteString(q.EscapeTableName(db.CatalogName(), db.SchemaName(), db.HistoryTableName()))

	if stmt.Where != nil {
		where, err := stmt.Where.SQL(q)
		if err != nil {
			return nil, fmt.Errorf("failed to render where clause: %w", err)
		}
		sb.WriteString(where)
	}

	if len(stmt.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(renderOrderBy(stmt.OrderBy, q))
	}

	if hasLimit {
		sb.WriteString(limitSuffix(family, limit, stmt.Where != nil))
	}

	return []SQL{NewUnparsedSQL(sb.String())}, nil
}

// renderColumns joins the column list and uppercases the whole result,
// separators and computed expressions included.
func renderColumns(cols []ColumnSpec, q dialect.Quoter) string {
	rendered := make([]string, len(cols))
	for i, c := range cols {
		if c.Computed {
			rendered[i] = c.Name
		} else {
			rendered[i] = q.EscapeColumnName(c.Name)
		}
	}
	return strings.ToUpper(strings.Join(rendered, ","))
}

// renderOrderBy renders "<name>[ <direction>]" tokens. A direction is only
// used when the token splits into exactly two parts on a single space, after
// trailing empty parts are dropped.
func renderOrderBy(tokens []string, q dialect.Quoter) string {
	rendered := make([]string, len(tokens))
	for i, tok := range tokens {
		parts := strings.Split(tok, " ")
		for len(parts) > 1 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		s := q.EscapeColumnName(parts[0])
		if len(parts) == 2 {
			s += " " + strings.ToUpper(parts[1])
		}
		rendered[i] = s
	}
	return strings.Join(rendered, ", ")
}

// limitSuffix returns the trailing row limit clause for the family.
//
// NOTE: the rownum form uses ROWNUM=n, not ROWNUM<=n. That only matches rows
// for n=1; it is kept as is until the intended semantics are confirmed.
func limitSuffix(family core.PaginationFamily, limit int, hasWhere bool) string {
	n := strconv.Itoa(limit)
	switch family {
	case core.PaginationRownum:
		if hasWhere {
			return " AND ROWNUM=" + n
		}
		return " WHERE ROWNUM=" + n
	case core.PaginationLimit:
		return " LIMIT " + n
	case core.PaginationFetchFirst:
		return " FETCH FIRST " + n + " ROWS ONLY"
	default: // top is a prefix, none has no syntax
		return ""
	}
}

// LimitSupported reports whether the family honors a row limit.
func LimitSupported(family core.PaginationFamily) bool {
	return family != core.PaginationNone
}
