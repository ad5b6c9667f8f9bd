package dialect

import (
	"sync"
	"testing"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	d := NewDialect("sess").DefaultSchema("public").Pagination(core.PaginationLimit).Build()

	s, err := NewSession(d, SessionOptions{})
	require.NoError(t, err)

	assert.Same(t, d, s.Dialect())
	assert.Equal(t, "", s.CatalogName())
	assert.Equal(t, "public", s.SchemaName())
	assert.Equal(t, core.DefaultHistoryTable, s.HistoryTableName())
	assert.Equal(t, core.QuotingLegacy, s.QuotingStrategy())
	assert.Equal(t, core.PaginationLimit, s.Pagination())
}

func TestNewSession_Options(t *testing.T) {
	d := NewDialect("sess").DefaultSchema("public").Build()

	s, err := NewSession(d, SessionOptions{
		Catalog:      "app",
		Schema:       "audit",
		HistoryTable: "changelog",
		Quoting:      core.QuotingAllObjects,
	})
	require.NoError(t, err)

	assert.Equal(t, "app", s.CatalogName())
	assert.Equal(t, "audit", s.SchemaName())
	assert.Equal(t, "changelog", s.HistoryTableName())
	assert.Equal(t, core.QuotingAllObjects, s.QuotingStrategy())
	assert.Equal(t, `"x"`, s.Quoter(s.QuotingStrategy()).EscapeObjectName("x"))
	assert.Equal(t, "x", s.Quoter(core.QuotingLegacy).EscapeObjectName("x"))
}

func TestNewSession_NilDialect(t *testing.T) {
	_, err := NewSession(nil, SessionOptions{})
	assert.ErrorIs(t, err, ErrDialectRequired)
}

func TestSession_SetQuotingStrategyConcurrent(t *testing.T) {
	s, err := NewSession(NewDialect("race").Build(), SessionOptions{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				s.SetQuotingStrategy(core.QuotingAllObjects)
				return
			}
			_ = s.QuotingStrategy()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, core.QuotingAllObjects, s.QuotingStrategy())
}
