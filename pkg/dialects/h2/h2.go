// Package h2 provides the H2 database dialect definition.
package h2

import (
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

func init() {
	dialect.Register(H2)
}

// Config is the H2 dialect configuration.
var Config = &core.DialectConfig{
	Name:          "h2",
	DefaultSchema: "PUBLIC",
	Placeholder:   core.PlaceholderQuestion,
	Pagination:    core.PaginationNone,
	Identifiers: core.IdentifierConfig{
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		Normalization: core.NormUppercase,
	},
	ReservedWords: []string{
		"all", "and", "any", "array", "as", "asymmetric", "authorization",
		"between", "both", "case", "cast", "check", "constraint", "cross",
		"current_catalog", "current_date", "current_path", "current_role",
		"current_schema", "current_time", "current_timestamp", "current_user",
		"day", "default", "distinct", "else", "end", "except", "exists",
		"false", "fetch", "for", "foreign", "from", "full", "group", "groups",
		"having", "hour", "if", "ilike", "in", "inner", "intersect", "interval",
		"is", "join", "key", "leading", "left", "like", "limit", "localtime",
		"localtimestamp", "minus", "minute", "month", "natural", "not", "null",
		"offset", "on", "or", "order", "over", "partition", "primary",
		"qualify", "range", "regexp", "right", "row", "rownum", "rows",
		"second", "select", "session_user", "set", "some", "symmetric",
		"system_user", "table", "to", "top", "trailing", "true", "uescape",
		"union", "unique", "unknown", "user", "using", "value", "values",
		"when", "where", "window", "with", "year",
	},
}

// H2 is the H2 dialect.
var H2 = dialect.New(Config).Build()
