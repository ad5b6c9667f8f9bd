// Package duckdb provides a DuckDB database adapter.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	duckdialect "github.com/leapstack-labs/changelogsql/pkg/dialects/duckdb"
)

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// DialectName returns the SQL dialect for this adapter.
func (a *Adapter) DialectName() string {
	return duckdialect.Config.Name
}

// Dialect returns the DuckDB dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return duckdialect.DuckDB
}

// DialectConfig returns the DuckDB dialect configuration.
func (a *Adapter) DialectConfig() *core.DialectConfig {
	return duckdialect.Config
}

// Connect establishes a connection to DuckDB.
// Use ":memory:" (or an empty path) for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	params, err := ParseParams(cfg.Params)
	if err != nil {
		return err
	}

	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to duckdb", slog.String("path", path))

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// Session settings must stick to one connection.
	db.SetMaxOpenConns(1)

	if err := applyParams(ctx, db, params, a.Logger); err != nil {
		_ = db.Close()
		return err
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// TableExists reports whether schema.table exists. An empty schema means
// the configured schema, then "main".
func (a *Adapter) TableExists(ctx context.Context, schema, table string) (bool, error) {
	if schema == "" {
		schema = a.Cfg.Schema
	}
	return a.TableExistsCommon(ctx, schema, table, duckdialect.DuckDB)
}

func applyParams(ctx context.Context, db *sql.DB, p *Params, logger *slog.Logger) error {
	for _, ext := range p.Extensions {
		logger.Debug("loading duckdb extension", slog.String("extension", ext))
		if _, err := db.ExecContext(ctx, fmt.Sprintf("INSTALL %s; LOAD %s;", ext, ext)); err != nil {
			return fmt.Errorf("failed to load extension %s: %w", ext, err)
		}
	}

	names := make([]string, 0, len(p.Settings))
	for name := range p.Settings {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		value := strings.ReplaceAll(p.Settings[name], "'", "''")
		if _, err := db.ExecContext(ctx, fmt.Sprintf("SET %s = '%s'", name, value)); err != nil {
			return fmt.Errorf("failed to apply setting %s: %w", name, err)
		}
	}
	return nil
}

// Ensure Adapter implements the adapter interfaces.
var (
	_ adapter.Adapter      = (*Adapter)(nil)
	_ adapter.TableChecker = (*Adapter)(nil)
)
