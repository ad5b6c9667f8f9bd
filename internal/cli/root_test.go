package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/changelogsql/internal/cli/commands"
	"github.com/leapstack-labs/changelogsql/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "changelogsql", cmd.Use)
	for _, name := range []string{"version", "dialects", "render", "validate", "query", "record", "init", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "target", "project-dir", "database", "state", "env", "history-table", "quoting", "dialect", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCommand_RenderWithFlags(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runRoot(t, "render",
		"--project-dir", dir,
		"--dialect", "oracle",
		"--history-table", "CHANGES",
		"--columns", "ID",
		"--limit", "1",
		"-o", "json")
	require.NoError(t, err)

	var out commands.RenderOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "oracle", out.Dialect)
	assert.Equal(t, []string{"SELECT ID FROM CHANGES WHERE ROWNUM=1"}, out.Statements)
}

func TestRootCommand_RenderFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `target:
  type: postgres
  database: app
  schema: audit
history:
  table: DATABASECHANGELOG
  quoting: quote_all_objects
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changelogsql.yaml"), []byte(content), 0600))

	stdout, _, err := runRoot(t, "render", "--project-dir", dir, "--preset", "count", "-o", "json")
	require.NoError(t, err)

	var out commands.RenderOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "postgres", out.Dialect)
	assert.Equal(t, "quote_all_objects", out.Quoting)
	assert.Equal(t, []string{"SELECT COUNT(*) FROM audit.DATABASECHANGELOG"}, out.Statements,
		"history objects keep legacy quoting")
}

func TestRootCommand_RecordThenQuery(t *testing.T) {
	dir := t.TempDir()
	state := filepath.Join(dir, "state", "history.db")

	_, _, err := runRoot(t, "record", "--project-dir", dir, "--state", state,
		"--id", "init", "--author", "ops", "--file", "changelog.yaml", "-o", "json")
	require.NoError(t, err)

	stdout, _, err := runRoot(t, "query", "--project-dir", dir, "--state", state,
		"--local", "--columns", "ID,AUTHOR,EXECTYPE", "-o", "json")
	require.NoError(t, err)

	var out commands.QueryOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "init", out.Rows[0]["ID"])
	assert.Equal(t, "ops", out.Rows[0]["AUTHOR"])
	assert.Equal(t, "EXECUTED", out.Rows[0]["EXECTYPE"])
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changelogsql.yaml"), []byte("target:\n  type: oracle\n"), 0600))

	_, _, err := runRoot(t, "render", "--project-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target configuration")
}

func TestRootCommand_InvalidQuotingFlag(t *testing.T) {
	_, _, err := runRoot(t, "render", "--project-dir", t.TempDir(), "--quoting", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid history configuration")
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := runRoot(t, "version", "--project-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "changelogsql v"+Version)
}

func TestRootCommand_Completion(t *testing.T) {
	stdout, _, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "changelogsql")
}

func TestGetConfigDefaults(t *testing.T) {
	c := GetConfig(t.Context())
	assert.Equal(t, config.DefaultStateFile, c.StatePath)
	assert.Equal(t, config.DefaultEnv, c.Environment)
	assert.NotNil(t, GetRenderer(t.Context()))
}
