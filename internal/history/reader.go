// Package history reads the migration history table of a database through
// the dialect-aware SQL generator.
package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// ErrNoHistoryTable is returned when the history table does not exist.
var ErrNoHistoryTable = errors.New("history table does not exist")

// Querier runs a query and returns its rows. Adapters and the local state
// store implement it.
type Querier interface {
	Query(ctx context.Context, sql string) (*core.Rows, error)
}

// Reader renders history statements for a database and runs them.
type Reader struct {
	q      Querier
	db     changelog.Database
	logger *slog.Logger
}

// NewReader creates a reader. If logger is nil, a discard logger is used.
func NewReader(q Querier, db changelog.Database, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{q: q, db: db, logger: logger}
}

// Render validates stmt and returns the SQL text it generates.
func (r *Reader) Render(stmt changelog.Statement) (string, error) {
	if err := changelog.Validate(stmt).Err(); err != nil {
		return "", fmt.Errorf("invalid statement: %w", err)
	}

	if limit, ok := stmt.LimitValue(); ok && !changelog.LimitSupported(r.db.Pagination()) {
		r.logger.Warn("row limit ignored: dialect has no pagination syntax",
			slog.Int("limit", limit),
			slog.String("pagination", r.db.Pagination().String()))
	}

	sqls, err := changelog.Generate(stmt, r.db)
	if err != nil {
		return "", err
	}
	return sqls[0].SQL(), nil
}

// Read runs stmt and returns every row. Column names are upper-cased.
func (r *Reader) Read(ctx context.Context, stmt changelog.Statement) ([]changelog.Row, error) {
	_, rows, err := r.ReadWithSQL(ctx, stmt)
	return rows, err
}

// ReadWithSQL is Read that also returns the SQL text it ran.
func (r *Reader) ReadWithSQL(ctx context.Context, stmt changelog.Statement) (string, []changelog.Row, error) {
	query, err := r.Render(stmt)
	if err != nil {
		return "", nil, err
	}
	rows, err := r.readQuery(ctx, query)
	return query, rows, err
}

func (r *Reader) readQuery(ctx context.Context, query string) ([]changelog.Row, error) {
	r.logger.Debug("reading history", slog.String("sql", query))

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	for i, c := range cols {
		cols[i] = strings.ToUpper(c)
	}

	var result []changelog.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		row := make(changelog.Row, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
			} else {
				row[c] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	r.logger.Debug("read history", slog.Int("rows", len(result)))
	return result, nil
}

// Exists reports whether the history table exists. Queriers that cannot
// check return true and leave the decision to the first query.
func (r *Reader) Exists(ctx context.Context) (bool, error) {
	tc, ok := r.q.(adapter.TableChecker)
	if !ok {
		return true, nil
	}
	return tc.TableExists(ctx, r.db.SchemaName(), r.db.HistoryTableName())
}

// Count returns the number of history rows.
func (r *Reader) Count(ctx context.Context) (int64, error) {
	rows, err := r.Read(ctx, changelog.CountStatement())
	if err != nil {
		return 0, err
	}
	if len(rows) != 1 {
		return 0, fmt.Errorf("count returned %d rows", len(rows))
	}
	for _, v := range rows[0] {
		switch n := v.(type) {
		case int64:
			return n, nil
		case int32:
			return int64(n), nil
		case int:
			return int64(n), nil
		case float64:
			return int64(n), nil
		case string:
			if i, err := strconv.ParseInt(n, 10, 64); err == nil {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("unexpected count value %v", rows[0])
}

// RanChangeSets returns every applied change set in execution order.
func (r *Reader) RanChangeSets(ctx context.Context) ([]changelog.Row, error) {
	return r.Read(ctx, changelog.RanChangeSetsStatement())
}

// LastExecuted returns the most recently applied change set, or nil when the
// history is empty. Dialects without pagination return every row; only the
// first is kept.
func (r *Reader) LastExecuted(ctx context.Context) (changelog.Row, error) {
	rows, err := r.Read(ctx, changelog.LastExecutedStatement())
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
