package postgres

import (
	"testing"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	d := Postgres

	require.NotNil(t, d)
	assert.Equal(t, "postgres", d.Name)
	assert.Equal(t, "public", d.DefaultSchema)
	assert.Equal(t, core.PaginationLimit, d.Pagination)
	assert.Equal(t, "$3", d.FormatPlaceholder(3))
}

func TestDialectRegistration(t *testing.T) {
	d, ok := dialect.Get("postgres")
	require.True(t, ok, "postgres dialect should be registered")
	assert.Same(t, Postgres, d)
}

func TestCatalogIgnored(t *testing.T) {
	q := Postgres.Quoter(core.QuotingLegacy)
	assert.Equal(t, "public.DATABASECHANGELOG", q.EscapeTableName("db", "public", "DATABASECHANGELOG"))
}
