// Package adapter provides the database adapter contract used to read the
// migration history table.
//
// This package contains the public contract that all database adapters must
// implement. Concrete adapter implementations are in pkg/adapters/
// subdirectories and register themselves from init().
package adapter

import (
	"context"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

type (
	// Config is an alias for core.AdapterConfig.
	Config = core.AdapterConfig

	// Rows is an alias for core.Rows.
	Rows = core.Rows
)

// Adapter defines the interface that all database adapters must implement.
type Adapter interface {
	core.Adapter

	// Dialect returns the SQL dialect used to render history queries
	// for this database.
	Dialect() *dialect.Dialect
}

// TableChecker is implemented by adapters that can tell whether a table
// exists without querying it.
type TableChecker interface {
	TableExists(ctx context.Context, schema, table string) (bool, error)
}
