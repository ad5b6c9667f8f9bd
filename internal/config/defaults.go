package config

import (
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// Default configuration values.
const (
	DefaultHistoryTable = core.DefaultHistoryTable
	DefaultQuoting      = "legacy"
)

// defaultPorts maps network adapter types to their usual port.
var defaultPorts = map[string]int{
	"postgres": 5432,
	"mysql":    3306,
	"mariadb":  3306,
}

// ApplyDefaults applies default values to a ProjectConfig.
func ApplyDefaults(c *ProjectConfig) {
	if c == nil {
		return
	}
	if c.History == nil {
		c.History = &HistoryConfig{}
	}
	ApplyHistoryDefaults(c.History)
	if c.Target != nil {
		ApplyTargetDefaults(c.Target)
	}
}

// ApplyHistoryDefaults applies default values to a HistoryConfig.
func ApplyHistoryDefaults(h *HistoryConfig) {
	if h == nil {
		return
	}
	if h.Table == "" {
		h.Table = DefaultHistoryTable
	}
	if h.Quoting == "" {
		h.Quoting = DefaultQuoting
	}
}

// ApplyTargetDefaults applies default values to a TargetConfig based on the target type.
func ApplyTargetDefaults(t *TargetConfig) {
	if t == nil {
		return
	}

	if t.Schema == "" {
		switch strings.ToLower(t.Type) {
		case "mysql", "mariadb":
			// MySQL schemas are databases.
			t.Schema = t.Database
		default:
			t.Schema = DefaultSchemaForType(t.Type)
		}
	}

	if t.Port == 0 {
		t.Port = defaultPorts[strings.ToLower(t.Type)]
	}
}
