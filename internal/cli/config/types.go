// Package config provides configuration management for the changelogsql CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields and functionality. The shared types are
// re-exported here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/changelogsql/internal/config"
)

// TargetConfig is an alias for the shared target configuration.
type TargetConfig = sharedcfg.TargetConfig

// HistoryConfig is an alias for the shared history table configuration.
type HistoryConfig = sharedcfg.HistoryConfig

// Config holds all CLI configuration options.
type Config struct {
	ProjectRoot  string               `koanf:"-"`
	StatePath    string               `koanf:"state_path"`
	Environment  string               `koanf:"environment"`
	Verbose      bool                 `koanf:"verbose"`
	OutputFormat string               `koanf:"output"`
	Target       *TargetConfig        `koanf:"target"`
	History      *HistoryConfig       `koanf:"history"`
	Environments map[string]EnvConfig `koanf:"environments"`
}

// EnvConfig holds environment-specific configuration overrides.
type EnvConfig struct {
	Target  *TargetConfig  `koanf:"target"`
	History *HistoryConfig `koanf:"history"`
}

// Default configuration values.
const (
	DefaultStateFile = ".changelogsql/state.db"
	DefaultEnv       = "dev"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
