package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/changelogsql/pkg/adapter"
	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, path string) *Adapter {
	t.Helper()
	adp := New(nil)
	require.NoError(t, adp.Connect(context.Background(), core.AdapterConfig{Path: path}))
	t.Cleanup(func() { _ = adp.Close() })
	return adp
}

func TestAdapter_Connect(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path is in-memory", path: ""},
		{name: "in-memory", path: ":memory:"},
		{name: "file-based", path: filepath.Join(t.TempDir(), "history.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adp := connect(t, tt.path)
			assert.True(t, adp.IsConnected())
		})
	}
}

func TestAdapter_TableExists(t *testing.T) {
	ctx := context.Background()
	adp := connect(t, ":memory:")

	ok, err := adp.TableExists(ctx, "", "DATABASECHANGELOG")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, adp.Exec(ctx, "CREATE TABLE DATABASECHANGELOG (ID TEXT NOT NULL)"))

	for _, name := range []string{"DATABASECHANGELOG", "databasechangelog"} {
		ok, err = adp.TableExists(ctx, "main", name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	_, err = adp.TableExists(ctx, "missing_schema", "DATABASECHANGELOG")
	assert.Error(t, err)
}

func TestAdapter_NotConnected(t *testing.T) {
	adp := New(nil)
	_, err := adp.TableExists(context.Background(), "", "DATABASECHANGELOG")
	assert.ErrorIs(t, err, adapter.ErrNotConnected)
	assert.NoError(t, adp.Close())
}

func TestNew(t *testing.T) {
	adp := New(nil)
	assert.Equal(t, "sqlite", adp.DialectName())
	assert.Equal(t, core.PaginationNone, adp.Dialect().Pagination)
	assert.Equal(t, "main", adp.DialectConfig().DefaultSchema)
}
