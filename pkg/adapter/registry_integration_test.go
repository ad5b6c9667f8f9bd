package adapter_test

import (
	"testing"

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Import adapter packages to ensure adapters are registered via init()
	_ "github.com/leapstack-labs/changelogsql/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/changelogsql/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/changelogsql/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/changelogsql/pkg/adapters/sqlite"
)

func TestListAdapters(t *testing.T) {
	adapters := adapter.ListAdapters()

	for _, name := range []string{"duckdb", "mysql", "postgres", "sqlite"} {
		assert.Contains(t, adapters, name, "%s should be in adapter list", name)
	}
}

func TestIsRegistered(t *testing.T) {
	tests := []struct {
		name        string
		adapterName string
		expected    bool
	}{
		{"duckdb registered", "duckdb", true},
		{"postgres registered", "postgres", true},
		{"sqlite registered", "sqlite", true},
		{"mysql registered", "mysql", true},
		{"unknown not registered", "unknown_db", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.IsRegistered(tt.adapterName)
			assert.Equal(t, tt.expected, got, "IsRegistered(%q)", tt.adapterName)
		})
	}
}

func TestNewAdapter_DialectMatches(t *testing.T) {
	tests := []struct {
		adapterType string
		dialect     string
	}{
		{"duckdb", "duckdb"},
		{"postgres", "postgres"},
		{"sqlite", "sqlite"},
		{"mysql", "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.adapterType, func(t *testing.T) {
			adp, err := adapter.NewAdapter(core.AdapterConfig{Type: tt.adapterType}, nil)
			require.NoError(t, err)
			require.NotNil(t, adp)
			assert.Equal(t, tt.dialect, adp.Dialect().Name)
			assert.Equal(t, tt.dialect, adp.DialectConfig().Name)
		})
	}
}

func TestNewAdapter_UnknownType(t *testing.T) {
	_, err := adapter.NewAdapter(core.AdapterConfig{Type: "unknown_adapter"}, nil)
	require.Error(t, err, "NewAdapter(unknown_adapter) should fail")

	var unknownErr *adapter.UnknownAdapterError
	require.ErrorAs(t, err, &unknownErr)

	assert.Equal(t, "unknown_adapter", unknownErr.Type, "error type")
	assert.Contains(t, unknownErr.Available, "duckdb", "Available adapters should include duckdb")
}
