// Package state provides a local migration history store backed by SQLite.
//
// The store keeps a DATABASECHANGELOG table with the same layout as the one
// managed on a target database, so the history SQL generator can read it
// through the sqlite dialect.
package state

import (
	"context"

	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// Store records and reads applied change sets.
type Store interface {
	// Record appends a change set to the history and returns the stored row.
	Record(ctx context.Context, cs changelog.ChangeSet) (*Entry, error)

	// Query runs a generated history query against the store.
	Query(ctx context.Context, sql string) (*core.Rows, error)

	// Close releases the underlying database.
	Close() error
}

// Entry is a recorded change set with the values the store assigned to it.
type Entry struct {
	changelog.ChangeSet
	OrderExecuted int64
	DeploymentID  string
}
