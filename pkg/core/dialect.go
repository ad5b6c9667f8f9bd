package core

import (
	"fmt"
	"strings"
)

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data — no behavior.
//
// The runtime behavior (escaping, reserved word lookup) lives in
// pkg/dialect.Dialect, which is built from this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "oracle", "postgres")
	Name string

	// Identifiers defines quoting and normalization rules
	Identifiers IdentifierConfig

	// DefaultSchema is the default schema name ("main" for DuckDB, "public" for Postgres)
	DefaultSchema string

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// Pagination selects how a row limit is expressed
	Pagination PaginationFamily

	// CatalogInObjectName is true when fully qualified names carry the catalog
	// (catalog.schema.table), as on SQL Server.
	CatalogInObjectName bool

	// ReservedWords need quoting when used as identifiers
	ReservedWords []string
}

// NormalizationStrategy defines how unquoted identifiers are normalized.
type NormalizationStrategy int

const (
	// NormLowercase normalizes unquoted identifiers to lowercase (default SQL behavior).
	NormLowercase NormalizationStrategy = iota
	// NormUppercase normalizes unquoted identifiers to uppercase (Snowflake, Oracle).
	NormUppercase
	// NormCaseSensitive preserves identifier case exactly (MySQL, ClickHouse).
	NormCaseSensitive
	// NormCaseInsensitive normalizes to lowercase for comparison (DuckDB, SQL Server).
	NormCaseInsensitive
)

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (DuckDB, MySQL, SQLite).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
	// PlaceholderColon uses :1, :2, etc. for parameters (Oracle).
	PlaceholderColon
	// PlaceholderAtP uses @p1, @p2, etc. for parameters (SQL Server).
	PlaceholderAtP
)

// IdentifierConfig defines how identifiers are quoted and normalized.
type IdentifierConfig struct {
	Quote         string                // Quote character: ", `, [
	QuoteEnd      string                // End quote character (usually same as Quote, ] for [)
	Escape        string                // Escape sequence: "", ``, ]]
	Normalization NormalizationStrategy // How to normalize unquoted identifiers
}

// QuotingStrategy controls how aggressively object names are quoted.
type QuotingStrategy int

const (
	// QuotingLegacy quotes reserved words and names that are not plain
	// identifiers. Used when referencing system objects.
	QuotingLegacy QuotingStrategy = iota
	// QuotingReservedWords quotes reserved words only.
	QuotingReservedWords
	// QuotingAllObjects quotes every object name.
	QuotingAllObjects
)

// String returns the configuration spelling of the strategy.
func (q QuotingStrategy) String() string {
	switch q {
	case QuotingLegacy:
		return "LEGACY"
	case QuotingReservedWords:
		return "QUOTE_ONLY_RESERVED_WORDS"
	case QuotingAllObjects:
		return "QUOTE_ALL_OBJECTS"
	default:
		return "unknown"
	}
}

// ParseQuotingStrategy parses a strategy name. Matching is case-insensitive
// and accepts "-" in place of "_". An empty string yields QuotingLegacy.
func ParseQuotingStrategy(s string) (QuotingStrategy, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_") {
	case "", "LEGACY":
		return QuotingLegacy, nil
	case "QUOTE_ONLY_RESERVED_WORDS", "RESERVED_WORDS":
		return QuotingReservedWords, nil
	case "QUOTE_ALL_OBJECTS", "ALL_OBJECTS":
		return QuotingAllObjects, nil
	default:
		return QuotingLegacy, fmt.Errorf("unknown quoting strategy %q", s)
	}
}

// PaginationFamily classifies how a dialect limits the number of returned rows.
type PaginationFamily int

const (
	// PaginationNone means the dialect has no supported row limit syntax.
	PaginationNone PaginationFamily = iota
	// PaginationTop places "TOP n" directly after SELECT (SQL Server).
	PaginationTop
	// PaginationRownum filters on the ROWNUM pseudo-column (Oracle).
	PaginationRownum
	// PaginationLimit appends "LIMIT n" (MySQL, PostgreSQL).
	PaginationLimit
	// PaginationFetchFirst appends "FETCH FIRST n ROWS ONLY" (DB2).
	PaginationFetchFirst
)

// String returns the string representation of PaginationFamily.
func (p PaginationFamily) String() string {
	switch p {
	case PaginationNone:
		return "none"
	case PaginationTop:
		return "top"
	case PaginationRownum:
		return "rownum"
	case PaginationLimit:
		return "limit"
	case PaginationFetchFirst:
		return "fetch-first"
	default:
		return "unknown"
	}
}
