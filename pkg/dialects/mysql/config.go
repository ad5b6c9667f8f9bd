// Package mysql provides the MySQL and MariaDB SQL dialect definitions.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/leapstack-labs/changelogsql/pkg/core"

var identifiers = core.IdentifierConfig{
	Quote:         "`",
	QuoteEnd:      "`",
	Escape:        "``",
	Normalization: core.NormCaseSensitive, // table names follow the filesystem
}

// Config is the MySQL dialect configuration.
var Config = &core.DialectConfig{
	Name:          "mysql",
	Placeholder:   core.PlaceholderQuestion,
	Pagination:    core.PaginationLimit,
	Identifiers:   identifiers,
	ReservedWords: reservedWords,
}

// MariaDBConfig is the MariaDB dialect configuration.
var MariaDBConfig = &core.DialectConfig{
	Name:          "mariadb",
	Placeholder:   core.PlaceholderQuestion,
	Pagination:    core.PaginationLimit,
	Identifiers:   identifiers,
	ReservedWords: append(reservedWords, mariadbReservedWords...),
}
