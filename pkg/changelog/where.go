package changelog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/changelogsql/pkg/dialect"
)

// WhereClause renders a filter for the history table. The returned text
// carries its own leading keyword, e.g. " WHERE MD5SUM IS NOT NULL".
type WhereClause interface {
	SQL(q dialect.Quoter) (string, error)
}

// WhereFunc adapts a function to WhereClause.
type WhereFunc func(q dialect.Quoter) (string, error)

// SQL calls f.
func (f WhereFunc) SQL(q dialect.Quoter) (string, error) {
	return f(q)
}

const wherePrefix = " WHERE "

// ErrEmptyWhere is returned by And when it has nothing to combine.
var ErrEmptyWhere = errors.New("where clause has no conditions")

// ByNotNullCheckSum selects rows that have a checksum.
type ByNotNullCheckSum struct{}

// SQL implements WhereClause.
func (ByNotNullCheckSum) SQL(q dialect.Quoter) (string, error) {
	return wherePrefix + q.EscapeColumnName(ColumnMD5Sum) + " IS NOT NULL", nil
}

// ByCheckSumNotNullAndNotLike selects rows whose checksum exists and was not
// computed with the given checksum version.
type ByCheckSumNotNullAndNotLike struct {
	Version int
}

// SQL implements WhereClause.
func (w ByCheckSumNotNullAndNotLike) SQL(q dialect.Quoter) (string, error) {
	col := q.EscapeColumnName(ColumnMD5Sum)
	return fmt.Sprintf("%s%s IS NOT NULL AND %s NOT LIKE '%d:%%'", wherePrefix, col, col, w.Version), nil
}

// ByColumnEquals selects rows where Column equals Value. A nil Value
// renders IS NULL. Supported values are strings, integers, booleans and
// time.Time.
type ByColumnEquals struct {
	Column string
	Value  any
}

// SQL implements WhereClause.
func (w ByColumnEquals) SQL(q dialect.Quoter) (string, error) {
	if w.Column == "" {
		return "", errors.New("column is required")
	}
	col := q.EscapeColumnName(w.Column)
	if w.Value == nil {
		return wherePrefix + col + " IS NULL", nil
	}
	lit, err := literal(w.Value)
	if err != nil {
		return "", fmt.Errorf("column %s: %w", w.Column, err)
	}
	return wherePrefix + col + " = " + lit, nil
}

// And combines clauses with AND under a single WHERE keyword.
func And(clauses ...WhereClause) WhereClause {
	return WhereFunc(func(q dialect.Quoter) (string, error) {
		if len(clauses) == 0 {
			return "", ErrEmptyWhere
		}
		conds := make([]string, 0, len(clauses))
		for _, c := range clauses {
			s, err := c.SQL(q)
			if err != nil {
				return "", err
			}
			cond, ok := strings.CutPrefix(s, wherePrefix)
			if !ok {
				return "", fmt.Errorf("cannot combine clause %q: missing WHERE prefix", s)
			}
			conds = append(conds, cond)
		}
		return wherePrefix + strings.Join(conds, " AND "), nil
	})
}

// literal renders v as a SQL literal.
func literal(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'", nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case time.Time:
		return "'" + val.UTC().Format("2006-01-02 15:04:05") + "'", nil
	default:
		return "", fmt.Errorf("unsupported literal type %T", v)
	}
}
