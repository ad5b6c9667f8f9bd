package dialect

import (
	"sync"

	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Catalog      string
	Schema       string // defaults to the dialect's default schema
	HistoryTable string // defaults to core.DefaultHistoryTable
	Quoting      core.QuotingStrategy
}

// Session is the connection-scoped view of a dialect: where the history table
// lives and which quoting strategy the connection was configured with.
//
// The configured strategy is guarded by a mutex. Code that needs a different
// strategy for a single operation asks for a Quoter instead of changing it.
type Session struct {
	dialect *Dialect
	catalog string
	schema  string
	table   string

	mu       sync.RWMutex
	strategy core.QuotingStrategy
}

// NewSession creates a session for the dialect.
func NewSession(d *Dialect, opts SessionOptions) (*Session, error) {
	if d == nil {
		return nil, ErrDialectRequired
	}
	schema := opts.Schema
	if schema == "" {
		schema = d.DefaultSchema
	}
	table := opts.HistoryTable
	if table == "" {
		table = core.DefaultHistoryTable
	}
	return &Session{
		dialect:  d,
		catalog:  opts.Catalog,
		schema:   schema,
		table:    table,
		strategy: opts.Quoting,
	}, nil
}

// Dialect returns the session's dialect.
func (s *Session) Dialect() *Dialect { return s.dialect }

// CatalogName returns the catalog holding the history table.
func (s *Session) CatalogName() string { return s.catalog }

// SchemaName returns the schema holding the history table.
func (s *Session) SchemaName() string { return s.schema }

// HistoryTableName returns the name of the migration history table.
func (s *Session) HistoryTableName() string { return s.table }

// Pagination returns the dialect's pagination family.
func (s *Session) Pagination() core.PaginationFamily { return s.dialect.Pagination }

// QuotingStrategy returns the configured quoting strategy.
func (s *Session) QuotingStrategy() core.QuotingStrategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strategy
}

// SetQuotingStrategy changes the configured quoting strategy.
func (s *Session) SetQuotingStrategy(strategy core.QuotingStrategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strategy
}

// Quoter returns an escaper using the given strategy for this dialect.
func (s *Session) Quoter(strategy core.QuotingStrategy) Quoter {
	return s.dialect.Quoter(strategy)
}
