// Package config provides shared configuration types for changelogsql.
// This package is decoupled from CLI concerns so the history reader and
// other tools can load a project's target without pulling in cobra.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

// TargetConfig holds database target configuration.
type TargetConfig struct {
	Type string `koanf:"type"` // postgres, mysql, mariadb, duckdb, sqlite

	// File-based databases (DuckDB, SQLite)
	Database string `koanf:"database"` // file path or database name

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Where the history table lives
	Catalog string `koanf:"catalog"`
	Schema  string `koanf:"schema"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`

	// Params holds adapter-specific configuration (e.g., DuckDB extensions, settings)
	Params map[string]any `koanf:"params"`
}

// DefaultSchemaForType returns the default schema for a database type.
// It looks up the dialect in the registry; if not found, returns "main" as fallback.
func DefaultSchemaForType(dbType string) string {
	if d, ok := dialect.Get(strings.ToLower(dbType)); ok && d.DefaultSchema != "" {
		return d.DefaultSchema
	}
	return "main"
}

// Validate checks if the target configuration is valid.
// It uses the adapter registry to determine which adapter types are available.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}

	if !adapter.IsRegistered(strings.ToLower(t.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.ListAdapters(),
		}
	}

	return nil
}

// ApplyDefaults fills in type-dependent defaults.
func (t *TargetConfig) ApplyDefaults() {
	ApplyTargetDefaults(t)
}

// ToAdapterConfig converts the target into the config handed to an adapter's Connect.
func (t *TargetConfig) ToAdapterConfig() adapter.Config {
	return adapter.Config{
		Type:     strings.ToLower(t.Type),
		Path:     t.Database,
		Database: t.Database,
		Schema:   t.Schema,
		Host:     t.Host,
		Port:     t.Port,
		Username: t.User,
		Password: t.Password,
		Options:  t.Options,
		Params:   t.Params,
	}
}

// HistoryConfig describes the migration history table.
type HistoryConfig struct {
	// Table is the history table name. Empty means DATABASECHANGELOG.
	Table string `koanf:"table"`

	// Quoting is the session quoting strategy: legacy, quote_only_reserved_words
	// or quote_all_objects.
	Quoting string `koanf:"quoting"`

	// Dialect overrides the dialect derived from the target type.
	Dialect string `koanf:"dialect"`
}

// Strategy parses the configured quoting strategy.
func (h *HistoryConfig) Strategy() (core.QuotingStrategy, error) {
	if h == nil {
		return core.QuotingLegacy, nil
	}
	return core.ParseQuotingStrategy(h.Quoting)
}

// Validate checks the history settings.
func (h *HistoryConfig) Validate() error {
	if h == nil {
		return nil
	}
	if _, err := h.Strategy(); err != nil {
		return fmt.Errorf("invalid history.quoting: %w", err)
	}
	if h.Dialect != "" {
		if _, err := dialect.Lookup(strings.ToLower(h.Dialect)); err != nil {
			return fmt.Errorf("invalid history.dialect: %w", err)
		}
	}
	return nil
}

// ProjectConfig holds the minimal project configuration needed outside the CLI.
type ProjectConfig struct {
	Target  *TargetConfig  `koanf:"target"`
	History *HistoryConfig `koanf:"history"`
}

// ApplyDefaults applies default values to a ProjectConfig.
func (c *ProjectConfig) ApplyDefaults() {
	ApplyDefaults(c)
}
