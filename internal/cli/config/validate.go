package config

import (
	"fmt"
	"os"
	"path/filepath"

	sharedcfg "github.com/leapstack-labs/changelogsql/internal/config"
)

// DefaultSchemaForType returns the default schema for a database type.
// This is a convenience wrapper that delegates to the shared config function.
func DefaultSchemaForType(dbType string) string {
	return sharedcfg.DefaultSchemaForType(dbType)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Target == nil {
		return fmt.Errorf("invalid target configuration: target is required")
	}
	if err := c.Target.Validate(); err != nil {
		return fmt.Errorf("invalid target configuration: %w", err)
	}
	if err := c.History.Validate(); err != nil {
		return fmt.Errorf("invalid history configuration: %w", err)
	}
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("unknown output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}
	return nil
}

// EnsureStateDir creates the directory holding the local state database.
func (c *Config) EnsureStateDir() error {
	if c.StatePath == "" || c.StatePath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(c.StatePath)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	return nil
}
