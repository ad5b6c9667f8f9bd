package commands

import (
	"sort"

	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	"github.com/leapstack-labs/changelogsql/internal/history"
	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/spf13/cobra"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Statement StatementOptions
	Local     bool
}

// QueryOutput is the JSON output of the query command.
type QueryOutput struct {
	SQL     string          `json:"sql"`
	Columns []string        `json:"columns"`
	Rows    []changelog.Row `json:"rows"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read the migration history table",
		Long: `Generate a history select for the target's dialect, run it and print the rows.

With --local the command reads the history kept in the local state database
(see 'changelogsql record') instead of connecting to the target.`,
		Example: `  # Applied change sets in order
  changelogsql query --preset ran

  # Last applied change set from the local state database
  changelogsql query --local --preset last -o json

  # Change sets by one author
  changelogsql query --where AUTHOR=alice --order-by ORDEREXECUTED`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts)
		},
	}

	addStatementFlags(cmd, &opts.Statement)
	cmd.Flags().BoolVar(&opts.Local, "local", false, "Read the local state database instead of the target")

	return cmd
}

func runQuery(cmd *cobra.Command, opts *QueryOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	ctx := cmd.Context()

	stmt, err := opts.Statement.Build(cmd)
	if err != nil {
		return err
	}

	reader, cleanup, err := openHistory(ctx, cmdCtx, opts.Local)
	if err != nil {
		return err
	}
	defer cleanup()

	exists, err := reader.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return history.ErrNoHistoryTable
	}

	query, rows, err := reader.ReadWithSQL(ctx, stmt)
	if err != nil {
		return err
	}

	cols := rowColumns(rows)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if rows == nil {
			rows = []changelog.Row{}
		}
		return r.JSON(QueryOutput{SQL: query, Columns: cols, Rows: rows})
	case output.ModeMarkdown:
		r.Code("sql", query)
		r.Println("")
	default:
		r.Muted(query)
	}

	if len(rows) == 0 {
		r.Println("(0 rows)")
		return nil
	}

	table := make([][]any, len(rows))
	for i, row := range rows {
		values := make([]any, len(cols))
		for j, c := range cols {
			values[j] = row[c]
		}
		table[i] = values
	}
	r.Table(cols, table)
	r.Printf("(%d rows)\n", len(rows))
	return nil
}

// rowColumns lists the columns present in rows: history columns in table
// order first, then anything else sorted by name.
func rowColumns(rows []changelog.Row) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for c := range row {
			seen[c] = true
		}
	}

	cols := make([]string, 0, len(seen))
	for _, spec := range changelog.AllColumns() {
		if seen[spec.Name] {
			cols = append(cols, spec.Name)
			delete(seen, spec.Name)
		}
	}

	extra := make([]string, 0, len(seen))
	for c := range seen {
		extra = append(extra, c)
	}
	sort.Strings(extra)

	return append(cols, extra...)
}
