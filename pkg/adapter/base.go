package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

// ErrNotConnected is returned when an adapter is used before Connect.
var ErrNotConnected = errors.New("database connection not established")

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Exec, Query and TableExists implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    core.AdapterConfig
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// Exec executes a SQL statement that doesn't return rows.
func (b *BaseSQLAdapter) Exec(ctx context.Context, sqlStr string) error {
	if b.DB == nil {
		return ErrNotConnected
	}
	_, err := b.DB.ExecContext(ctx, sqlStr)
	if err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Query executes a SQL statement that returns rows.
func (b *BaseSQLAdapter) Query(ctx context.Context, sqlStr string) (*core.Rows, error) {
	if b.DB == nil {
		return nil, ErrNotConnected
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := b.DB.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return &core.Rows{Rows: rows}, nil
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// TableExistsCommon looks the table up in information_schema.tables using
// the dialect's placeholders. An empty schema falls back to the dialect's
// default schema; if that is empty too, only the table name is matched.
func (b *BaseSQLAdapter) TableExistsCommon(ctx context.Context, schema, table string, d *dialect.Dialect) (bool, error) {
	if b.DB == nil {
		return false, ErrNotConnected
	}
	if schema == "" {
		schema = d.DefaultSchema
	}

	var (
		query string
		args  []any
	)
	if schema == "" {
		//nolint:gosec // Placeholders are safe - they come from dialect.FormatPlaceholder
		query = fmt.Sprintf(
			"SELECT COUNT(*) FROM information_schema.tables WHERE LOWER(table_name) = LOWER(%s)",
			d.FormatPlaceholder(1))
		args = []any{table}
	} else {
		//nolint:gosec // Placeholders are safe - they come from dialect.FormatPlaceholder
		query = fmt.Sprintf(
			"SELECT COUNT(*) FROM information_schema.tables WHERE LOWER(table_schema) = LOWER(%s) AND LOWER(table_name) = LOWER(%s)",
			d.FormatPlaceholder(1), d.FormatPlaceholder(2))
		args = []any{schema, table}
	}

	var n int
	if err := b.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", table, err)
	}
	return n > 0, nil
}
