// Package db2 provides the IBM Db2 dialect definitions for Db2 LUW and
// Db2 for z/OS. Both limit rows with FETCH FIRST n ROWS ONLY.
package db2

import (
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

func init() {
	dialect.Register(DB2)
	dialect.Register(DB2Z)
}

var identifiers = core.IdentifierConfig{
	Quote:         `"`,
	QuoteEnd:      `"`,
	Escape:        `""`,
	Normalization: core.NormUppercase,
}

// Config is the Db2 LUW dialect configuration.
var Config = &core.DialectConfig{
	Name:          "db2",
	Placeholder:   core.PlaceholderQuestion,
	Pagination:    core.PaginationFetchFirst,
	Identifiers:   identifiers,
	ReservedWords: reservedWords,
}

// ZConfig is the Db2 for z/OS dialect configuration.
var ZConfig = &core.DialectConfig{
	Name:          "db2z",
	Placeholder:   core.PlaceholderQuestion,
	Pagination:    core.PaginationFetchFirst,
	Identifiers:   identifiers,
	ReservedWords: reservedWords,
}

// reservedWords lists the Db2 reserved words that commonly clash with names.
var reservedWords = []string{
	"add", "after", "all", "alter", "and", "any", "as", "asc", "before",
	"begin", "between", "by", "call", "case", "cast", "check", "close",
	"collection", "column", "commit", "connect", "constraint", "create",
	"cross", "current", "current_date", "current_time", "current_timestamp",
	"cursor", "declare", "default", "delete", "desc", "distinct", "do", "drop",
	"else", "end", "except", "execute", "exists", "fetch", "for", "foreign",
	"from", "full", "function", "grant", "group", "having", "if", "in",
	"index", "inner", "insert", "intersect", "into", "is", "join", "key",
	"left", "like", "lock", "not", "null", "of", "on", "open", "or", "order",
	"outer", "primary", "procedure", "references", "right", "rollback", "row",
	"rows", "select", "set", "table", "then", "to", "union", "unique",
	"update", "user", "using", "values", "view", "when", "where", "with",
}

// DB2 is the Db2 LUW dialect.
var DB2 = dialect.New(Config).Build()

// DB2Z is the Db2 for z/OS dialect.
var DB2Z = dialect.New(ZConfig).Build()
