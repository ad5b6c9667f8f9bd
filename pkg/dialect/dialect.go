// Package dialect provides SQL dialect configuration and identifier escaping.
//
// This package contains the public contract for dialect definitions used by the
// history SQL generator and the adapters. Concrete dialect definitions are
// registered from pkg/dialects/*/ packages.
package dialect

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// Re-exported so dialect definitions only need to import this package.
const (
	NormLowercase       = core.NormLowercase
	NormUppercase       = core.NormUppercase
	NormCaseSensitive   = core.NormCaseSensitive
	NormCaseInsensitive = core.NormCaseInsensitive

	PlaceholderQuestion = core.PlaceholderQuestion
	PlaceholderDollar   = core.PlaceholderDollar
	PlaceholderColon    = core.PlaceholderColon
	PlaceholderAtP      = core.PlaceholderAtP
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name        string
	Identifiers core.IdentifierConfig

	// Database-specific settings
	DefaultSchema string                // Default schema name ("main" for DuckDB, "public" for Postgres)
	Placeholder   core.PlaceholderStyle // How to format query parameters

	// Pagination is set once per dialect definition and drives row limiting.
	Pagination core.PaginationFamily

	// CatalogInObjectName prefixes qualified table names with the catalog.
	CatalogInObjectName bool

	reservedWords map[string]struct{} // lowercased; keywords are case-insensitive everywhere
}

// Config returns the pure data configuration for this dialect.
func (d *Dialect) Config() *core.DialectConfig {
	words := make([]string, 0, len(d.reservedWords))
	for w := range d.reservedWords {
		words = append(words, w)
	}

	return &core.DialectConfig{
		Name:                d.Name,
		Identifiers:         d.Identifiers,
		DefaultSchema:       d.DefaultSchema,
		Placeholder:         d.Placeholder,
		Pagination:          d.Pagination,
		CatalogInObjectName: d.CatalogInObjectName,
		ReservedWords:       words,
	}
}

// NormalizeName normalizes an identifier according to dialect rules.
func (d *Dialect) NormalizeName(name string) string {
	switch d.Identifiers.Normalization {
	case core.NormUppercase:
		return strings.ToUpper(name)
	case core.NormLowercase, core.NormCaseInsensitive:
		return strings.ToLower(name)
	default: // NormCaseSensitive
		return name
	}
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	case core.PlaceholderColon:
		return ":" + strconv.Itoa(index)
	case core.PlaceholderAtP:
		return "@p" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// IsReservedWord returns true if the word needs quoting when used as an identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reservedWords[strings.ToLower(word)]
	return ok
}

// ReservedWordCount returns the number of registered reserved words.
func (d *Dialect) ReservedWordCount() int {
	return len(d.reservedWords)
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	// Escape any existing quote end characters in the name (e.g., ] -> ]])
	escaped := strings.ReplaceAll(name, d.Identifiers.QuoteEnd, d.Identifiers.Escape)
	return d.Identifiers.Quote + escaped + d.Identifiers.QuoteEnd
}

// Quoter returns an escaper bound to this dialect and the given strategy.
// The strategy travels with the value; nothing on the dialect is mutated.
func (d *Dialect) Quoter(strategy core.QuotingStrategy) Quoter {
	return Quoter{dialect: d, strategy: strategy}
}

// ---------- Builder ----------

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
// Identifiers default to ANSI double quotes with lowercase normalization.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			Identifiers: core.IdentifierConfig{
				Quote:         `"`,
				QuoteEnd:      `"`,
				Escape:        `""`,
				Normalization: core.NormLowercase,
			},
			reservedWords: make(map[string]struct{}),
		},
	}
}

// New creates a dialect builder from a DialectConfig.
func New(cfg *core.DialectConfig) *Builder {
	b := &Builder{
		dialect: &Dialect{
			Name:                cfg.Name,
			Identifiers:         cfg.Identifiers,
			DefaultSchema:       cfg.DefaultSchema,
			Placeholder:         cfg.Placeholder,
			Pagination:          cfg.Pagination,
			CatalogInObjectName: cfg.CatalogInObjectName,
			reservedWords:       make(map[string]struct{}),
		},
	}
	return b.WithReservedWords(cfg.ReservedWords...)
}

// Identifiers configures identifier quoting and normalization.
func (b *Builder) Identifiers(quote, quoteEnd, escape string, norm core.NormalizationStrategy) *Builder {
	b.dialect.Identifiers = core.IdentifierConfig{
		Quote:         quote,
		QuoteEnd:      quoteEnd,
		Escape:        escape,
		Normalization: norm,
	}
	return b
}

// DefaultSchema sets the default schema name.
func (b *Builder) DefaultSchema(schema string) *Builder {
	b.dialect.DefaultSchema = schema
	return b
}

// PlaceholderStyle sets how query parameters are formatted.
func (b *Builder) PlaceholderStyle(style core.PlaceholderStyle) *Builder {
	b.dialect.Placeholder = style
	return b
}

// Pagination sets the row limiting family.
func (b *Builder) Pagination(family core.PaginationFamily) *Builder {
	b.dialect.Pagination = family
	return b
}

// CatalogInObjectName makes qualified names include the catalog.
func (b *Builder) CatalogInObjectName() *Builder {
	b.dialect.CatalogInObjectName = true
	return b
}

// WithReservedWords registers words that need quoting when used as identifiers.
func (b *Builder) WithReservedWords(words ...string) *Builder {
	for _, w := range words {
		b.dialect.reservedWords[strings.ToLower(w)] = struct{}{}
	}
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
