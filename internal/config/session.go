package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

// DialectName returns the dialect used to render history queries: the
// history override when set, else the target type.
func DialectName(t *TargetConfig, h *HistoryConfig) string {
	if h != nil && h.Dialect != "" {
		return strings.ToLower(h.Dialect)
	}
	if t != nil {
		return strings.ToLower(t.Type)
	}
	return ""
}

// NewSession builds the dialect session describing where the history table
// lives for the given target.
func NewSession(t *TargetConfig, h *HistoryConfig) (*dialect.Session, error) {
	name := DialectName(t, h)
	if name == "" {
		return nil, dialect.ErrDialectRequired
	}
	d, err := dialect.Lookup(name)
	if err != nil {
		return nil, err
	}

	strategy, err := h.Strategy()
	if err != nil {
		return nil, fmt.Errorf("invalid history.quoting: %w", err)
	}

	opts := dialect.SessionOptions{Quoting: strategy}
	if t != nil {
		opts.Catalog = t.Catalog
		opts.Schema = t.Schema
		// A defaulted schema belongs to the target's dialect, not the override's.
		if name != strings.ToLower(t.Type) && t.Schema == DefaultSchemaForType(t.Type) {
			opts.Schema = ""
		}
	}
	if h != nil {
		opts.HistoryTable = h.Table
	}
	return dialect.NewSession(d, opts)
}
