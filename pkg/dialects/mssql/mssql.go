// Package mssql provides the Microsoft SQL Server dialect definition.
//
// SQL Server limits rows with a TOP n prefix and qualifies objects with
// their catalog (database) name.
package mssql

import (
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

func init() {
	dialect.Register(MSSQL)
}

// Config is the SQL Server dialect configuration.
var Config = &core.DialectConfig{
	Name:                "mssql",
	DefaultSchema:       "dbo",
	Placeholder:         core.PlaceholderAtP,
	Pagination:          core.PaginationTop,
	CatalogInObjectName: true,
	Identifiers: core.IdentifierConfig{
		Quote:         "[",
		QuoteEnd:      "]",
		Escape:        "]]",
		Normalization: core.NormCaseInsensitive,
	},
	ReservedWords: reservedWords,
}

// reservedWords is the T-SQL reserved keyword list.
var reservedWords = []string{
	"add", "all", "alter", "and", "any", "as", "asc", "authorization",
	"backup", "begin", "between", "break", "browse", "bulk", "by", "cascade",
	"case", "check", "checkpoint", "close", "clustered", "coalesce", "collate",
	"column", "commit", "compute", "constraint", "contains", "continue",
	"convert", "create", "cross", "current", "current_date", "current_time",
	"current_timestamp", "current_user", "cursor", "database", "dbcc",
	"deallocate", "declare", "default", "delete", "deny", "desc", "disk",
	"distinct", "distributed", "double", "drop", "dump", "else", "end",
	"errlvl", "escape", "except", "exec", "execute", "exists", "exit",
	"external", "fetch", "file", "fillfactor", "for", "foreign", "freetext",
	"from", "full", "function", "goto", "grant", "group", "having", "holdlock",
	"identity", "if", "in", "index", "inner", "insert", "intersect", "into",
	"is", "join", "key", "kill", "left", "like", "lineno", "merge", "national",
	"nocheck", "nonclustered", "not", "null", "nullif", "of", "off", "offsets",
	"on", "open", "option", "or", "order", "outer", "over", "percent", "pivot",
	"plan", "primary", "print", "proc", "procedure", "public", "raiserror",
	"read", "reconfigure", "references", "replication", "restore", "restrict",
	"return", "revert", "revoke", "right", "rollback", "rowcount", "rule",
	"save", "schema", "select", "session_user", "set", "setuser", "shutdown",
	"some", "statistics", "system_user", "table", "tablesample", "then", "to",
	"top", "tran", "transaction", "trigger", "truncate", "union", "unique",
	"unpivot", "update", "use", "user", "values", "varying", "view", "waitfor",
	"when", "where", "while", "with",
}

// MSSQL is the SQL Server dialect.
var MSSQL = dialect.New(Config).Build()
