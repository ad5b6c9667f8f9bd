// Package commands implements the changelogsql subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/changelogsql/internal/cli/config"
	"github.com/leapstack-labs/changelogsql/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/changelogsql/internal/config"
	"github.com/leapstack-labs/changelogsql/internal/history"
	"github.com/leapstack-labs/changelogsql/internal/state"
	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/changelog"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	"github.com/spf13/cobra"
)

// CommandContext holds the dependencies shared by commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// Session builds the dialect session for the configured target.
func (c *CommandContext) Session() (*dialect.Session, error) {
	return sharedcfg.NewSession(c.Cfg.Target, c.Cfg.History)
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	target := &config.TargetConfig{
		Type:     getEnvOrDefault(config.EnvPrefix+"TARGET__TYPE", "sqlite"),
		Database: os.Getenv(config.EnvPrefix + "TARGET__DATABASE"),
	}
	sharedcfg.ApplyTargetDefaults(target)
	hist := &config.HistoryConfig{
		Table:   os.Getenv(config.EnvPrefix + "HISTORY__TABLE"),
		Quoting: os.Getenv(config.EnvPrefix + "HISTORY__QUOTING"),
		Dialect: os.Getenv(config.EnvPrefix + "HISTORY__DIALECT"),
	}
	sharedcfg.ApplyHistoryDefaults(hist)

	return &config.Config{
		StatePath:    getEnvOrDefault(config.EnvPrefix+"STATE_PATH", config.DefaultStateFile),
		Environment:  getEnvOrDefault(config.EnvPrefix+"ENVIRONMENT", config.DefaultEnv),
		Verbose:      os.Getenv(config.EnvPrefix+"VERBOSE") == "true",
		OutputFormat: os.Getenv(config.EnvPrefix + "OUTPUT"),
		Target:       target,
		History:      hist,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// openHistory connects to the history table. With local set it opens the
// local state database instead of the configured target. The returned
// cleanup closes the connection.
func openHistory(ctx context.Context, c *CommandContext, local bool) (*history.Reader, func(), error) {
	if local {
		return openLocalHistory(c)
	}

	db, err := c.Session()
	if err != nil {
		return nil, nil, err
	}

	adp, err := adapter.NewAdapter(c.Cfg.Target.ToAdapterConfig(), c.Logger)
	if err != nil {
		return nil, nil, err
	}
	if err := adp.Connect(ctx, c.Cfg.Target.ToAdapterConfig()); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", c.Cfg.Target.Type, err)
	}

	cleanup := func() { _ = adp.Close() }
	return history.NewReader(adp, db, c.Logger), cleanup, nil
}

func openLocalHistory(c *CommandContext) (*history.Reader, func(), error) {
	store, err := openStateStore(c)
	if err != nil {
		return nil, nil, err
	}

	db, err := localSession(c)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = store.Close() }
	return history.NewReader(store, db, c.Logger), cleanup, nil
}

// openStateStore opens and migrates the local state database.
func openStateStore(c *CommandContext) (*state.SQLiteStore, error) {
	if err := c.Cfg.EnsureStateDir(); err != nil {
		return nil, err
	}
	store := state.NewSQLiteStore(c.Logger)
	if err := store.Open(c.Cfg.StatePath); err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate state database: %w", err)
	}
	return store, nil
}

// localSession describes the history table inside the local state database.
func localSession(c *CommandContext) (*dialect.Session, error) {
	strategy, err := c.Cfg.History.Strategy()
	if err != nil {
		return nil, err
	}
	d, err := dialect.Lookup("sqlite")
	if err != nil {
		return nil, err
	}
	return dialect.NewSession(d, dialect.SessionOptions{
		HistoryTable: changelog.DefaultHistoryTable,
		Quoting:      strategy,
	})
}
