package changelog

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/leapstack-labs/changelogsql/pkg/core"
	"github.com/leapstack-labs/changelogsql/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, family core.PaginationFamily, opts dialect.SessionOptions) *dialect.Session {
	t.Helper()
	d := dialect.NewDialect("test-"+family.String()).
		WithReservedWords("order", "user", "desc").
		Pagination(family).
		Build()
	s, err := dialect.NewSession(d, opts)
	require.NoError(t, err)
	return s
}

func generateOne(t *testing.T, stmt Statement, db Database) string {
	t.Helper()
	sqls, err := Generate(stmt, db)
	require.NoError(t, err)
	require.Len(t, sqls, 1)
	return sqls[0].SQL()
}

func TestGenerate_Basic(t *testing.T) {
	tests := []struct {
		name string
		cols []ColumnSpec
		opts dialect.SessionOptions
		want string
	}{
		{
			name: "single column",
			cols: Columns("ID"),
			want: "SELECT ID FROM DATABASECHANGELOG",
		},
		{
			name: "columns joined without spaces",
			cols: Columns("ID", "AUTHOR", "FILENAME"),
			want: "SELECT ID,AUTHOR,FILENAME FROM DATABASECHANGELOG",
		},
		{
			name: "schema qualified",
			cols: Columns("ID"),
			opts: dialect.SessionOptions{Schema: "public"},
			want: "SELECT ID FROM public.DATABASECHANGELOG",
		},
		{
			name: "custom table",
			cols: Columns("ID"),
			opts: dialect.SessionOptions{Schema: "audit", HistoryTable: "changelog"},
			want: "SELECT ID FROM audit.changelog",
		},
		{
			name: "lowercase columns are uppercased",
			cols: Columns("id", "author"),
			want: "SELECT ID,AUTHOR FROM DATABASECHANGELOG",
		},
		{
			name: "reserved column is quoted then uppercased",
			cols: Columns("order"),
			want: `SELECT "ORDER" FROM DATABASECHANGELOG`,
		},
		{
			name: "computed column emitted verbatim then uppercased",
			cols: []ColumnSpec{Computed("cnt(x)")},
			want: "SELECT CNT(X) FROM DATABASECHANGELOG",
		},
		{
			name: "computed expression is not escaped",
			cols: []ColumnSpec{Computed("COUNT(*)"), Column("my-col")},
			want: `SELECT COUNT(*),"MY-COL" FROM DATABASECHANGELOG`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, core.PaginationNone, tt.opts)
			assert.Equal(t, tt.want, generateOne(t, NewStatement(tt.cols...), s))
		})
	}
}

func TestGenerate_Pagination(t *testing.T) {
	tests := []struct {
		name   string
		family core.PaginationFamily
		where  WhereClause
		want   string
	}{
		{
			name:   "top prefix",
			family: core.PaginationTop,
			want:   "SELECT TOP 5 ID FROM DATABASECHANGELOG",
		},
		{
			name:   "rownum without where",
			family: core.PaginationRownum,
			want:   "SELECT ID FROM DATABASECHANGELOG WHERE ROWNUM=5",
		},
		{
			name:   "rownum with where",
			family: core.PaginationRownum,
			where:  ByNotNullCheckSum{},
			want:   "SELECT ID FROM DATABASECHANGELOG WHERE MD5SUM IS NOT NULL AND ROWNUM=5",
		},
		{
			name:   "limit suffix",
			family: core.PaginationLimit,
			want:   "SELECT ID FROM DATABASECHANGELOG LIMIT 5",
		},
		{
			name:   "fetch first suffix",
			family: core.PaginationFetchFirst,
			want:   "SELECT ID FROM DATABASECHANGELOG FETCH FIRST 5 ROWS ONLY",
		},
		{
			name:   "no pagination ignores limit",
			family: core.PaginationNone,
			want:   "SELECT ID FROM DATABASECHANGELOG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, tt.family, dialect.SessionOptions{})
			stmt := NewStatement(Column("ID")).WithLimit(5)
			if tt.where != nil {
				stmt = stmt.WithWhere(tt.where)
			}
			assert.Equal(t, tt.want, generateOne(t, stmt, s))
		})
	}
}

func TestGenerate_TopWithoutLimit(t *testing.T) {
	s := newSession(t, core.PaginationTop, dialect.SessionOptions{})
	got := generateOne(t, NewStatement(Column("ID")), s)
	assert.Equal(t, "SELECT ID FROM DATABASECHANGELOG", got)
}

func TestGenerate_OrderBy(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "direction and plain",
			tokens: []string{"NAME DESC", "ID"},
			want:   "SELECT ID FROM DATABASECHANGELOG ORDER BY NAME DESC, ID",
		},
		{
			name:   "direction uppercased",
			tokens: []string{"DATEEXECUTED asc"},
			want:   "SELECT ID FROM DATABASECHANGELOG ORDER BY DATEEXECUTED ASC",
		},
		{
			name:   "reserved column escaped",
			tokens: []string{"user desc"},
			want:   `SELECT ID FROM DATABASECHANGELOG ORDER BY "user" DESC`,
		},
		{
			name:   "trailing space keeps the direction",
			tokens: []string{"NAME DESC "},
			want:   "SELECT ID FROM DATABASECHANGELOG ORDER BY NAME DESC",
		},
		{
			name:   "trailing spaces on a bare name",
			tokens: []string{"ID  "},
			want:   "SELECT ID FROM DATABASECHANGELOG ORDER BY ID",
		},
		{
			name:   "extra parts drop the direction",
			tokens: []string{"ID  DESC"},
			want:   "SELECT ID FROM DATABASECHANGELOG ORDER BY ID",
		},
		{
			name:   "empty sequence adds nothing",
			tokens: []string{},
			want:   "SELECT ID FROM DATABASECHANGELOG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, core.PaginationNone, dialect.SessionOptions{})
			stmt := NewStatement(Column("ID")).WithOrderBy(tt.tokens...)
			assert.Equal(t, tt.want, generateOne(t, stmt, s))
		})
	}
}

func TestGenerate_ClauseOrder(t *testing.T) {
	// rownum goes after ORDER BY; kept literally.
	s := newSession(t, core.PaginationRownum, dialect.SessionOptions{Schema: "app"})
	stmt := NewStatement(Columns("ID", "AUTHOR")...).
		WithWhere(ByNotNullCheckSum{}).
		WithOrderBy("ORDEREXECUTED DESC").
		WithLimit(1)

	got := generateOne(t, stmt, s)
	assert.Equal(t,
		"SELECT ID,AUTHOR FROM app.DATABASECHANGELOG WHERE MD5SUM IS NOT NULL ORDER BY ORDEREXECUTED DESC AND ROWNUM=1",
		got)
}

func TestGenerate_LimitFamiliesFullStatement(t *testing.T) {
	stmt := NewStatement(Columns("ID")...).
		WithWhere(ByNotNullCheckSum{}).
		WithOrderBy("ID").
		WithLimit(3)

	s := newSession(t, core.PaginationLimit, dialect.SessionOptions{})
	assert.Equal(t, "SELECT ID FROM DATABASECHANGELOG WHERE MD5SUM IS NOT NULL ORDER BY ID LIMIT 3", generateOne(t, stmt, s))

	s = newSession(t, core.PaginationTop, dialect.SessionOptions{})
	assert.Equal(t, "SELECT TOP 3 ID FROM DATABASECHANGELOG WHERE MD5SUM IS NOT NULL ORDER BY ID", generateOne(t, stmt, s))
}

func TestGenerate_UsesLegacyQuoting(t *testing.T) {
	s := newSession(t, core.PaginationLimit, dialect.SessionOptions{
		Schema:  "public",
		Quoting: core.QuotingAllObjects,
	})

	got := generateOne(t, NewStatement(Column("ID")).WithOrderBy("ID"), s)
	assert.Equal(t, "SELECT ID FROM public.DATABASECHANGELOG ORDER BY ID", got)
}

func TestGenerate_StrategyUnchanged(t *testing.T) {
	for _, strategy := range []core.QuotingStrategy{core.QuotingLegacy, core.QuotingReservedWords, core.QuotingAllObjects} {
		t.Run(strategy.String(), func(t *testing.T) {
			s := newSession(t, core.PaginationRownum, dialect.SessionOptions{Quoting: strategy})

			_, err := Generate(NewStatement(Column("ID")).WithLimit(1), s)
			require.NoError(t, err)
			assert.Equal(t, strategy, s.QuotingStrategy(), "after success")

			failing := WhereFunc(func(dialect.Quoter) (string, error) {
				return "", errors.New("boom")
			})
			_, err = Generate(NewStatement(Column("ID")).WithWhere(failing), s)
			require.Error(t, err)
			assert.Equal(t, strategy, s.QuotingStrategy(), "after failure")
		})
	}
}

func TestGenerate_WhereClauseError(t *testing.T) {
	s := newSession(t, core.PaginationNone, dialect.SessionOptions{})
	sentinel := errors.New("renderer failed")

	_, err := Generate(NewStatement(Column("ID")).WithWhere(WhereFunc(func(dialect.Quoter) (string, error) {
		return "", sentinel
	})), s)

	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "failed to render where clause")
}

func TestGenerate_WhereClauseReceivesLegacyQuoter(t *testing.T) {
	s := newSession(t, core.PaginationNone, dialect.SessionOptions{Quoting: core.QuotingAllObjects})

	var seen core.QuotingStrategy = -1
	_, err := Generate(NewStatement(Column("ID")).WithWhere(WhereFunc(func(q dialect.Quoter) (string, error) {
		seen = q.Strategy()
		return "", nil
	})), s)

	require.NoError(t, err)
	assert.Equal(t, core.QuotingLegacy, seen)
}

func TestGenerate_Idempotent(t *testing.T) {
	s := newSession(t, core.PaginationFetchFirst, dialect.SessionOptions{})
	stmt := LastExecutedStatement()

	first := generateOne(t, stmt, s)
	second := generateOne(t, stmt, s)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasSuffix(first, " FETCH FIRST 1 ROWS ONLY"))
}

func TestGenerate_ConcurrentWithStrategyChanges(t *testing.T) {
	s := newSession(t, core.PaginationLimit, dialect.SessionOptions{})
	stmt := NewStatement(Columns("ID", "AUTHOR")...).WithLimit(2)
	want := "SELECT ID,AUTHOR FROM DATABASECHANGELOG LIMIT 2"

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				s.SetQuotingStrategy(core.QuotingAllObjects)
			}
			sqls, err := Generate(stmt, s)
			if err == nil {
				results[i] = sqls[0].SQL()
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
