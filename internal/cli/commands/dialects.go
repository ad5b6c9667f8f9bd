package commands

import (
	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	"github.com/spf13/cobra"
)

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name          string `json:"name"`
	Pagination    string `json:"pagination"`
	Quote         string `json:"quote"`
	DefaultSchema string `json:"default_schema,omitempty"`
	Placeholder   string `json:"placeholder"`
	Catalog       bool   `json:"catalog_in_object_name"`
	Adapter       bool   `json:"adapter"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long: `List every registered dialect with its row limit syntax, identifier quotes
and default schema. The adapter column shows whether 'query' can connect to it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(NewCommandContext(cmd).Renderer)
		},
	}
}

func listDialects() []DialectInfo {
	names := dialect.List()
	infos := make([]DialectInfo, 0, len(names))
	for _, name := range names {
		d, ok := dialect.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, DialectInfo{
			Name:          d.Name,
			Pagination:    d.Pagination.String(),
			Quote:         d.Identifiers.Quote + d.Identifiers.QuoteEnd,
			DefaultSchema: d.DefaultSchema,
			Placeholder:   d.FormatPlaceholder(1),
			Catalog:       d.CatalogInObjectName,
			Adapter:       adapter.IsRegistered(name),
		})
	}
	return infos
}

func runDialects(r *output.Renderer) error {
	infos := listDialects()

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	rows := make([][]any, len(infos))
	for i, d := range infos {
		adapterCol := ""
		if d.Adapter {
			adapterCol = "yes"
		}
		rows[i] = []any{d.Name, d.Pagination, d.Quote, d.DefaultSchema, d.Placeholder, adapterCol}
	}
	r.Table([]string{"Dialect", "Pagination", "Quote", "Default schema", "Placeholder", "Adapter"}, rows)
	return nil
}
