package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/spf13/cobra"
)

// RecordOutput is the JSON output of the record command.
type RecordOutput struct {
	Key           string `json:"key"`
	OrderExecuted int64  `json:"order_executed"`
	ExecType      string `json:"exec_type"`
	DeploymentID  string `json:"deployment_id"`
	StatePath     string `json:"state_path"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand() *cobra.Command {
	cs := &changelog.ChangeSet{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a change set in the local state database",
		Long: `Append a change set to the DATABASECHANGELOG table of the local state database.

The local history is laid out like the one on a target database, so
'changelogsql query --local' reads it back with the same generated SQL.
A change set is identified by file, id and author; recording the same
identity twice fails.`,
		Example: `  changelogsql record --id 1 --author alice --file db/changelog.xml --md5sum 9:abc
  changelogsql record --id 2 --author bob --file db/changelog.xml --exec-type MARK_RAN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecord(cmd, *cs)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cs.ID, "id", "", "Change set id (required)")
	f.StringVar(&cs.Author, "author", "", "Change set author (required)")
	f.StringVar(&cs.Filename, "file", "", "Changelog file (required)")
	f.StringVar(&cs.MD5Sum, "md5sum", "", "Checksum, e.g. 9:0f1e...")
	f.StringVar(&cs.Description, "description", "", "Description")
	f.StringVar(&cs.Comments, "comments", "", "Comments")
	f.StringVar(&cs.Tag, "tag", "", "Tag")
	f.StringVar(&cs.ExecType, "exec-type", changelog.ExecTypeExecuted, "EXECUTED, FAILED, SKIPPED, RERAN or MARK_RAN")
	f.StringVar(&cs.Contexts, "contexts", "", "Contexts expression")
	f.StringVar(&cs.Labels, "labels", "", "Labels expression")

	_ = cmd.RegisterFlagCompletionFunc("exec-type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return execTypes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

var execTypes = []string{
	changelog.ExecTypeExecuted,
	changelog.ExecTypeFailed,
	changelog.ExecTypeSkipped,
	changelog.ExecTypeReran,
	changelog.ExecTypeMarkRan,
}

func runRecord(cmd *cobra.Command, cs changelog.ChangeSet) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	cs.ExecType = strings.ToUpper(cs.ExecType)
	if !isExecType(cs.ExecType) {
		return fmt.Errorf("unknown exec type %q (want %s)", cs.ExecType, strings.Join(execTypes, ", "))
	}

	store, err := openStateStore(cmdCtx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.Record(cmd.Context(), cs)
	if err != nil {
		return err
	}

	out := RecordOutput{
		Key:           entry.Key(),
		OrderExecuted: entry.OrderExecuted,
		ExecType:      entry.ExecType,
		DeploymentID:  entry.DeploymentID,
		StatePath:     store.Path(),
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}
	r.StatusLine(out.Key, "success", fmt.Sprintf("%s #%d", out.ExecType, out.OrderExecuted))
	return nil
}

func isExecType(s string) bool {
	for _, t := range execTypes {
		if s == t {
			return true
		}
	}
	return false
}
