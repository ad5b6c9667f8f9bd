// Package ansi provides the base ANSI SQL dialect.
//
// ANSI SQL has no row limiting syntax the history generator can rely on, so
// limits are ignored for this dialect.
package ansi

import (
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ReservedWords are the SQL:2016 reserved words most likely to collide with
// column or table names.
var ReservedWords = []string{
	"all", "alter", "and", "any", "as", "asc", "between", "by", "case", "cast",
	"check", "column", "constraint", "create", "cross", "current",
	"current_date", "current_time", "current_timestamp", "current_user",
	"default", "delete", "desc", "distinct", "drop", "else", "end", "except",
	"exists", "false", "fetch", "for", "foreign", "from", "full", "grant",
	"group", "having", "in", "inner", "insert", "intersect", "into", "is",
	"join", "left", "like", "natural", "not", "null", "of", "on", "or",
	"order", "outer", "primary", "references", "right", "select", "session_user",
	"set", "some", "table", "then", "to", "true", "union", "unique", "update",
	"user", "using", "values", "when", "where", "with",
}

// ANSI is the base ANSI SQL dialect.
var ANSI = dialect.NewDialect("ansi").
	Identifiers(`"`, `"`, `""`, core.NormUppercase).
	PlaceholderStyle(core.PlaceholderQuestion).
	Pagination(core.PaginationNone).
	WithReservedWords(ReservedWords...).
	Build()
