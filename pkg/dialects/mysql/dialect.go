package mysql

import "github.com/leapstack-labs/changelogsql/pkg/dialect"

func init() {
	dialect.Register(MySQL)
	dialect.Register(MariaDB)
}

// reservedWords contains MySQL 8 reserved words likely to appear as names.
var reservedWords = []string{
	"accessible", "add", "all", "alter", "analyze", "and", "as", "asc",
	"before", "between", "both", "by", "call", "cascade", "case", "change",
	"check", "collate", "column", "condition", "constraint", "continue",
	"convert", "create", "cross", "cube", "current_date", "current_time",
	"current_timestamp", "current_user", "cursor", "database", "databases",
	"default", "delete", "desc", "describe", "distinct", "div", "drop", "each",
	"else", "elseif", "empty", "exists", "explain", "false", "fetch", "for",
	"force", "foreign", "from", "fulltext", "function", "generated", "grant",
	"group", "grouping", "groups", "having", "if", "ignore", "in", "index",
	"inner", "insert", "interval", "into", "is", "join", "key", "keys", "kill",
	"lag", "lead", "leading", "left", "like", "limit", "lines", "load", "lock",
	"match", "mod", "natural", "not", "null", "of", "on", "optimize", "option",
	"or", "order", "out", "outer", "over", "partition", "primary", "procedure",
	"range", "rank", "read", "references", "regexp", "release", "rename",
	"repeat", "replace", "require", "restrict", "return", "revoke", "right",
	"rlike", "row", "rows", "schema", "schemas", "select", "set", "show",
	"sql", "table", "then", "to", "trailing", "trigger", "true", "union",
	"unique", "unlock", "update", "usage", "use", "using", "values", "when",
	"where", "while", "window", "with", "write", "xor",
}

// mariadbReservedWords are reserved in MariaDB but not in MySQL.
var mariadbReservedWords = []string{
	"offset", "returning", "current_role", "delete_domain_id", "page_checksum",
}

// MySQL is the MySQL dialect. Row limits render as LIMIT n.
var MySQL = dialect.New(Config).Build()

// MariaDB is the MariaDB dialect. It paginates like MySQL.
var MariaDB = dialect.New(MariaDBConfig).Build()
