package commands

import (
	"errors"

	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/spf13/cobra"
)

// ErrInvalidStatement is returned by validate when problems were found.
var ErrInvalidStatement = errors.New("statement is invalid")

// ValidateOutput is the JSON output of the validate command.
type ValidateOutput struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

// ValidationIssue is one validation problem.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &StatementOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a history select without rendering it",
		Long: `Validate the statement described by the flags and report every problem found.

The command exits non-zero when the statement is invalid.`,
		Example: `  # Fails: nothing to select
  changelogsql validate --columns "" --order-by ID

  changelogsql validate --preset ran`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	addStatementFlags(cmd, opts)

	return cmd
}

func runValidate(cmd *cobra.Command, opts *StatementOptions) error {
	r := NewCommandContext(cmd).Renderer

	stmt, err := opts.Build(cmd)
	if err != nil {
		return err
	}
	// An explicit empty --columns means "nothing selected".
	if cmd.Flags().Changed("columns") && len(nonEmpty(opts.Columns)) == 0 && len(opts.Computed) == 0 {
		stmt.Columns = nil
	}

	verrs := changelog.Validate(stmt)
	out := ValidateOutput{Valid: !verrs.HasErrors()}
	for _, e := range verrs {
		out.Errors = append(out.Errors, ValidationIssue{Field: e.Field, Message: e.Message})
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		if out.Valid {
			r.StatusLine("statement is valid", "success", "")
		}
		for _, e := range out.Errors {
			r.StatusLine(e.Message, "failed", e.Field)
		}
	}

	if !out.Valid {
		return ErrInvalidStatement
	}
	return nil
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
