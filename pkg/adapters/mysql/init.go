package mysql

import (
	"log/slog"

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
)

func init() {
	adapter.Register("mysql", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
	adapter.Register("mariadb", func(logger *slog.Logger) adapter.Adapter { return NewMariaDB(logger) })
}
