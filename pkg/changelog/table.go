package changelog

import (
	"fmt"

	"github.com/leapstack-labs/changelogsql/pkg/core"
)

// DefaultHistoryTable is the default name of the migration history table.
const DefaultHistoryTable = core.DefaultHistoryTable

// History table columns.
const (
	ColumnID            = "ID"
	ColumnAuthor        = "AUTHOR"
	ColumnFilename      = "FILENAME"
	ColumnDateExecuted  = "DATEEXECUTED"
	ColumnOrderExecuted = "ORDEREXECUTED"
	ColumnExecType      = "EXECTYPE"
	ColumnMD5Sum        = "MD5SUM"
	ColumnDescription   = "DESCRIPTION"
	ColumnComments      = "COMMENTS"
	ColumnTag           = "TAG"
	ColumnLiquibase     = "LIQUIBASE"
	ColumnContexts      = "CONTEXTS"
	ColumnLabels        = "LABELS"
	ColumnDeploymentID  = "DEPLOYMENT_ID"
)

var allColumns = []string{
	ColumnID, ColumnAuthor, ColumnFilename, ColumnDateExecuted, ColumnOrderExecuted,
	ColumnExecType, ColumnMD5Sum, ColumnDescription, ColumnComments, ColumnTag,
	ColumnLiquibase, ColumnContexts, ColumnLabels, ColumnDeploymentID,
}

// AllColumns returns every history table column, in table order.
func AllColumns() []ColumnSpec {
	return Columns(allColumns...)
}

// CountStatement counts history rows.
func CountStatement() Statement {
	return NewStatement(Computed("COUNT(*)"))
}

// RanChangeSetsStatement lists applied change sets in execution order.
func RanChangeSetsStatement() Statement {
	return NewStatement(AllColumns()...).
		WithOrderBy(ColumnDateExecuted+" ASC", ColumnOrderExecuted+" ASC")
}

// LastExecutedStatement selects the most recently applied change set.
func LastExecutedStatement() Statement {
	return NewStatement(AllColumns()...).
		WithOrderBy(ColumnDateExecuted+" DESC", ColumnOrderExecuted+" DESC").
		WithLimit(1)
}

// ChecksumStatement lists change sets whose checksum predates version.
func ChecksumStatement(version int) Statement {
	return NewStatement(Columns(ColumnID, ColumnAuthor, ColumnFilename, ColumnMD5Sum)...).
		WithWhere(ByCheckSumNotNullAndNotLike{Version: version})
}

// Exec types recorded in the EXECTYPE column.
const (
	ExecTypeExecuted = "EXECUTED"
	ExecTypeFailed   = "FAILED"
	ExecTypeSkipped  = "SKIPPED"
	ExecTypeReran    = "RERAN"
	ExecTypeMarkRan  = "MARK_RAN"
)

// Row is one history row keyed by upper-cased column name.
type Row map[string]any

// String returns the column value as a string, or "" when it is NULL.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// ChangeSet identifies an applied change set and the values recorded for it.
// ID, Author and Filename together form its identity.
type ChangeSet struct {
	ID          string
	Author      string
	Filename    string
	MD5Sum      string
	Description string
	Comments    string
	Tag         string
	ExecType    string
	Contexts    string
	Labels      string
}

// Key returns the change set identity as "filename::id::author".
func (c ChangeSet) Key() string {
	return c.Filename + "::" + c.ID + "::" + c.Author
}
