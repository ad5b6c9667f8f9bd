package ansi

import (
	"testing"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestANSI(t *testing.T) {
	d, ok := dialect.Get("ansi")
	require.True(t, ok, "ansi dialect should be registered")
	assert.Same(t, ANSI, d)

	assert.Equal(t, core.PaginationNone, d.Pagination)
	assert.True(t, d.IsReservedWord("ORDER"))
	assert.True(t, d.IsReservedWord("user"))
	assert.False(t, d.IsReservedWord("author"))
	assert.Equal(t, "MY_TABLE", d.NormalizeName("my_table"))
}
