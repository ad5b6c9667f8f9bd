package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/changelogsql/internal/cli/config"
	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/changelogsql/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Type     string
	Database string
	Table    string
	Quoting  string
	Force    bool
}

type starterTarget struct {
	Type     string `yaml:"type"`
	Database string `yaml:"database,omitempty"`
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"password,omitempty"`
	Schema   string `yaml:"schema,omitempty"`
}

type starterHistory struct {
	Table   string `yaml:"table"`
	Quoting string `yaml:"quoting"`
}

type starterConfig struct {
	StatePath string         `yaml:"state_path"`
	Target    starterTarget  `yaml:"target"`
	History   starterHistory `yaml:"history"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a changelogsql.yaml configuration file",
		Long: `Write a starter changelogsql.yaml describing the target database and
where its migration history table lives.

Server databases get placeholder credentials read from the environment.`,
		Example: `  # SQLite project in the current directory
  changelogsql init

  # Postgres project in a new directory
  changelogsql init deploy --type postgres --database app

  # Overwrite an existing config
  changelogsql init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cfg := getConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			return runInit(r, dir, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Type, "type", "sqlite", "Target database type")
	f.StringVar(&opts.Database, "database", "", "Database name or file")
	f.StringVar(&opts.Table, "table", sharedcfg.DefaultHistoryTable, "History table name")
	f.StringVar(&opts.Quoting, "quoting", sharedcfg.DefaultQuoting, "Object quoting strategy")
	f.BoolVar(&opts.Force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, opts *InitOptions) error {
	target := &config.TargetConfig{Type: strings.ToLower(opts.Type), Database: opts.Database}
	if err := target.Validate(); err != nil {
		return err
	}
	hist := &config.HistoryConfig{Table: opts.Table, Quoting: opts.Quoting}
	if err := hist.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, sharedcfg.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", sharedcfg.ConfigFileName)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", configPath, err)
	}

	data, err := yaml.Marshal(starter(target, hist))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.StatusLine("Created "+configPath, "success", target.Type)
	r.Println("")
	r.Println("Next steps:")
	r.Println("  changelogsql render --preset ran")
	r.Println("  changelogsql query --preset last")
	return nil
}

func starter(t *config.TargetConfig, h *config.HistoryConfig) starterConfig {
	st := starterTarget{Type: t.Type, Database: t.Database}

	switch t.Type {
	case "sqlite", "duckdb":
		if st.Database == "" {
			st.Database = "changelog." + t.Type
		}
	default:
		sharedcfg.ApplyTargetDefaults(t)
		st.Host = "${DB_HOST}"
		st.Port = t.Port
		st.User = "${DB_USER}"
		st.Password = "${DB_PASSWORD}"
		st.Schema = t.Schema
	}

	return starterConfig{
		StatePath: config.DefaultStateFile,
		Target:    st,
		History:   starterHistory{Table: h.Table, Quoting: strings.ToLower(h.Quoting)},
	}
}
