package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/spf13/cobra"
)

// Statement presets selectable with --preset.
const (
	PresetCount     = "count"
	PresetRan       = "ran"
	PresetLast      = "last"
	PresetChecksums = "checksums"
)

// StatementOptions holds the flags describing a history select.
type StatementOptions struct {
	Preset          string
	Columns         []string
	Computed        []string
	Where           []string
	WhereNull       []string
	HasChecksum     bool
	ChecksumVersion int
	OrderBy         []string
	Limit           int
}

// addStatementFlags registers the statement flags on cmd.
func addStatementFlags(cmd *cobra.Command, opts *StatementOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.Preset, "preset", "", "Start from a preset: count, ran, last, checksums")
	f.StringSliceVarP(&opts.Columns, "columns", "c", nil, "Columns to select (escaped)")
	f.StringSliceVar(&opts.Computed, "computed", nil, "Computed expressions to select verbatim, e.g. COUNT(*)")
	f.StringArrayVarP(&opts.Where, "where", "w", nil, "Filter COLUMN=VALUE (repeatable, combined with AND)")
	f.StringSliceVar(&opts.WhereNull, "where-null", nil, "Filter rows where COLUMN IS NULL")
	f.BoolVar(&opts.HasChecksum, "has-checksum", false, "Only rows with an MD5SUM")
	f.IntVar(&opts.ChecksumVersion, "stale-checksum", 0, "Only rows whose MD5SUM was not computed with this checksum version")
	f.StringSliceVar(&opts.OrderBy, "order-by", nil, "Order tokens: COLUMN or \"COLUMN DESC\"")
	f.IntVarP(&opts.Limit, "limit", "n", -1, "Maximum rows (-1 for no limit)")

	_ = cmd.RegisterFlagCompletionFunc("preset", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{PresetCount, PresetRan, PresetLast, PresetChecksums}, cobra.ShellCompDirectiveNoFileComp
	})
}

// presetStatement returns the statement a preset starts from.
func presetStatement(name string, checksumVersion int) (changelog.Statement, error) {
	switch strings.ToLower(name) {
	case "":
		return changelog.Statement{}, nil
	case PresetCount:
		return changelog.CountStatement(), nil
	case PresetRan:
		return changelog.RanChangeSetsStatement(), nil
	case PresetLast:
		return changelog.LastExecutedStatement(), nil
	case PresetChecksums:
		return changelog.ChecksumStatement(checksumVersion), nil
	default:
		return changelog.Statement{}, fmt.Errorf("unknown preset %q (want count, ran, last or checksums)", name)
	}
}

// Build assembles the statement. Flags override what the preset sets.
// An empty column list with no preset selects every history column.
func (o *StatementOptions) Build(cmd *cobra.Command) (changelog.Statement, error) {
	stmt, err := presetStatement(o.Preset, o.ChecksumVersion)
	if err != nil {
		return stmt, err
	}

	if len(o.Columns) > 0 || len(o.Computed) > 0 {
		cols := changelog.Columns(o.Columns...)
		for _, expr := range o.Computed {
			cols = append(cols, changelog.Computed(expr))
		}
		stmt.Columns = cols
	} else if o.Preset == "" {
		stmt.Columns = changelog.AllColumns()
	}

	where, err := o.whereClauses()
	if err != nil {
		return stmt, err
	}
	if stmt.Where != nil && len(where) > 0 {
		where = append([]changelog.WhereClause{stmt.Where}, where...)
	}
	switch {
	case len(where) == 1:
		stmt = stmt.WithWhere(where[0])
	case len(where) > 1:
		stmt = stmt.WithWhere(changelog.And(where...))
	}

	if len(o.OrderBy) > 0 {
		stmt = stmt.WithOrderBy(o.OrderBy...)
	}

	if cmd.Flags().Changed("limit") {
		if o.Limit < 0 {
			stmt.Limit = nil
		} else {
			stmt = stmt.WithLimit(o.Limit)
		}
	}

	return stmt, nil
}

func (o *StatementOptions) whereClauses() ([]changelog.WhereClause, error) {
	var clauses []changelog.WhereClause

	if o.HasChecksum {
		clauses = append(clauses, changelog.ByNotNullCheckSum{})
	}
	if o.ChecksumVersion > 0 && o.Preset != PresetChecksums {
		clauses = append(clauses, changelog.ByCheckSumNotNullAndNotLike{Version: o.ChecksumVersion})
	}
	for _, expr := range o.Where {
		col, raw, ok := strings.Cut(expr, "=")
		col = strings.TrimSpace(col)
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid --where %q: want COLUMN=VALUE", expr)
		}
		clauses = append(clauses, changelog.ByColumnEquals{Column: col, Value: parseWhereValue(strings.TrimSpace(raw))})
	}
	for _, col := range o.WhereNull {
		clauses = append(clauses, changelog.ByColumnEquals{Column: strings.TrimSpace(col)})
	}

	return clauses, nil
}

// parseWhereValue keeps integers numeric so ORDEREXECUTED=3 is not quoted.
func parseWhereValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}
