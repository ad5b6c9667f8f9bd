package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	"github.com/spf13/cobra"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Statement StatementOptions
	Catalog   string
	Schema    string
}

// RenderOutput is the JSON output of the render command.
type RenderOutput struct {
	Dialect      string   `json:"dialect"`
	Pagination   string   `json:"pagination"`
	Quoting      string   `json:"quoting"`
	LimitIgnored bool     `json:"limit_ignored,omitempty"`
	Statements   []string `json:"statements"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a history table select for a dialect",
		Long: `Render the SELECT statement that reads the migration history table.

The statement is generated for the configured target's dialect, or the one
given with --dialect. Object names always use legacy quoting, whatever the
session quoting strategy is. Row limits use the dialect's own syntax and are
dropped for dialects without one.`,
		Example: `  # All columns, newest first, on Oracle
  changelogsql render --dialect oracle --order-by "DATEEXECUTED DESC" --limit 1

  # Row count on SQL Server
  changelogsql render --dialect mssql --preset count

  # Change sets with stale checksums
  changelogsql render --preset checksums --stale-checksum 9 -o json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	addStatementFlags(cmd, &opts.Statement)
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "Catalog holding the history table (overrides target.catalog)")
	cmd.Flags().StringVar(&opts.Schema, "schema", "", "Schema holding the history table (overrides target.schema)")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	stmt, err := opts.Statement.Build(cmd)
	if err != nil {
		return err
	}

	db, err := renderSession(cmdCtx, opts)
	if err != nil {
		return err
	}

	if err := changelog.Validate(stmt).Err(); err != nil {
		return fmt.Errorf("invalid statement: %w", err)
	}

	sqls, err := changelog.Generate(stmt, db)
	if err != nil {
		return fmt.Errorf("failed to generate SQL: %w", err)
	}

	_, hasLimit := stmt.LimitValue()
	limitIgnored := hasLimit && !changelog.LimitSupported(db.Pagination())
	if limitIgnored {
		cmdCtx.Logger.Debug("row limit dropped", slog.String("dialect", db.Dialect().Name))
	}

	out := RenderOutput{
		Dialect:      db.Dialect().Name,
		Pagination:   db.Pagination().String(),
		Quoting:      db.QuotingStrategy().String(),
		LimitIgnored: limitIgnored,
		Statements:   make([]string, len(sqls)),
	}
	for i, s := range sqls {
		out.Statements[i] = s.SQL()
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Code("sql", strings.TrimRight(changelog.Script(sqls), "\n"))
	default:
		r.Println(r.Styles().Muted.Render(fmt.Sprintf("-- dialect: %s, pagination: %s", out.Dialect, out.Pagination)))
		r.Code("sql", strings.TrimRight(changelog.Script(sqls), "\n"))
	}

	if limitIgnored {
		r.Warning(fmt.Sprintf("dialect %s has no row limit syntax; --limit was ignored", out.Dialect))
	}
	return nil
}

// renderSession applies the command's location overrides to the configured session.
func renderSession(c *CommandContext, opts *RenderOptions) (*dialect.Session, error) {
	base, err := c.Session()
	if err != nil {
		return nil, err
	}
	if opts.Catalog == "" && opts.Schema == "" {
		return base, nil
	}

	catalog := base.CatalogName()
	if opts.Catalog != "" {
		catalog = opts.Catalog
	}
	schema := base.SchemaName()
	if opts.Schema != "" {
		schema = opts.Schema
	}
	return dialect.NewSession(base.Dialect(), dialect.SessionOptions{
		Catalog:      catalog,
		Schema:       schema,
		HistoryTable: base.HistoryTableName(),
		Quoting:      base.QuotingStrategy(),
	})
}
