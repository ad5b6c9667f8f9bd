package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// Version is written to the LIQUIBASE column of recorded rows.
const Version = "changelogsql"

// ErrNotOpened is returned when the store is used before Open.
var ErrNotOpened = errors.New("database not opened")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db           *sql.DB
	path         string
	logger       *slog.Logger
	deploymentID string
	now          func() time.Time
}

// NewSQLiteStore creates a new SQLite state store instance.
// If logger is nil, a discard logger is used. All rows recorded through one
// store share a deployment id.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{
		logger:       logger,
		deploymentID: uuid.NewString(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	s.logger.Debug("opened state store", slog.String("path", path))

	s.db = db
	s.path = path
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying database handle.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Path returns the path the store was opened with.
func (s *SQLiteStore) Path() string {
	return s.path
}

// DeploymentID returns the id stamped on rows recorded by this store.
func (s *SQLiteStore) DeploymentID() string {
	return s.deploymentID
}

// Query runs a statement against the store.
func (s *SQLiteStore) Query(ctx context.Context, sqlStr string) (*core.Rows, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}
	//nolint:rowserrcheck // rows.Err() must be checked by caller after iteration completes
	rows, err := s.db.QueryContext(ctx, sqlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return &core.Rows{Rows: rows}, nil
}

// Record appends cs to DATABASECHANGELOG with the next execution order.
// ExecType defaults to EXECUTED.
func (s *SQLiteStore) Record(ctx context.Context, cs changelog.ChangeSet) (*Entry, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}

	var verrs changelog.ValidationErrors
	verrs.CheckRequired("id", strings.TrimSpace(cs.ID) != "")
	verrs.CheckRequired("author", strings.TrimSpace(cs.Author) != "")
	verrs.CheckRequired("filename", strings.TrimSpace(cs.Filename) != "")
	if err := verrs.Err(); err != nil {
		return nil, fmt.Errorf("invalid change set: %w", err)
	}
	if cs.ExecType == "" {
		cs.ExecType = changelog.ExecTypeExecuted
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var order int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(ORDEREXECUTED), 0) + 1 FROM DATABASECHANGELOG").Scan(&order); err != nil {
		return nil, fmt.Errorf("failed to get next execution order: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO DATABASECHANGELOG (
			ID, AUTHOR, FILENAME, DATEEXECUTED, ORDEREXECUTED, EXECTYPE, MD5SUM,
			DESCRIPTION, COMMENTS, TAG, LIQUIBASE, CONTEXTS, LABELS, DEPLOYMENT_ID
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cs.ID, cs.Author, cs.Filename, s.now().Truncate(time.Second), order, cs.ExecType, nullString(cs.MD5Sum),
		nullString(cs.Description), nullString(cs.Comments), nullString(cs.Tag), Version,
		nullString(cs.Contexts), nullString(cs.Labels), s.deploymentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record change set %s: %w", cs.Key(), err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit change set %s: %w", cs.Key(), err)
	}

	s.logger.Debug("recorded change set",
		slog.String("changeset", cs.Key()),
		slog.Int64("order", order),
		slog.String("deployment_id", s.deploymentID))

	return &Entry{ChangeSet: cs, OrderExecuted: order, DeploymentID: s.deploymentID}, nil
}

// nullString returns a sql.NullString for optional string fields.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Store = (*SQLiteStore)(nil)
