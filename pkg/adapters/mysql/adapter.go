// Package mysql provides a MySQL database adapter using go-sql-driver/mysql.
// MariaDB servers are reached with the "mariadb" adapter type.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	mysqldialect "github.com/leapstack-labs/changelogsql/pkg/dialects/mysql"
)

// Adapter implements the adapter.Adapter interface for MySQL and MariaDB.
type Adapter struct {
	adapter.BaseSQLAdapter
	dialect *dialect.Dialect
	config  *core.DialectConfig
}

// New creates a new MySQL adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return newAdapter(logger, mysqldialect.MySQL, mysqldialect.Config)
}

// NewMariaDB creates an adapter that renders history queries with the
// MariaDB dialect.
func NewMariaDB(logger *slog.Logger) *Adapter {
	return newAdapter(logger, mysqldialect.MariaDB, mysqldialect.MariaDBConfig)
}

func newAdapter(logger *slog.Logger, d *dialect.Dialect, cfg *core.DialectConfig) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
		dialect:        d,
		config:         cfg,
	}
}

// DialectName returns the SQL dialect for this adapter.
func (a *Adapter) DialectName() string {
	return a.dialect.Name
}

// Dialect returns the adapter's dialect.
func (a *Adapter) Dialect() *dialect.Dialect {
	return a.dialect
}

// DialectConfig returns the adapter's dialect configuration.
func (a *Adapter) DialectConfig() *core.DialectConfig {
	return a.config
}

// Connect establishes a connection to MySQL.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	dsn := buildMySQLDSN(cfg)

	a.Logger.Debug("connecting to mysql", slog.String("host", cfg.Host), slog.String("database", cfg.Database))

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open mysql connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping mysql: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// TableExists reports whether the table exists. MySQL schemas are
// databases, so an empty schema means the configured database.
func (a *Adapter) TableExists(ctx context.Context, schema, table string) (bool, error) {
	if schema == "" {
		schema = a.Cfg.Database
	}
	return a.TableExistsCommon(ctx, schema, table, a.dialect)
}

// buildMySQLDSN constructs a go-sql-driver/mysql DSN. Options are passed
// through as connection parameters.
func buildMySQLDSN(cfg adapter.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 3306
	}

	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Loc = time.UTC
	if len(cfg.Options) > 0 {
		mc.Params = make(map[string]string, len(cfg.Options))
		for k, v := range cfg.Options {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN()
}

// Ensure Adapter implements the adapter interfaces.
var (
	_ adapter.Adapter      = (*Adapter)(nil)
	_ adapter.TableChecker = (*Adapter)(nil)
)
