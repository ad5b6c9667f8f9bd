package changelog

import (
	"fmt"
	"strings"
)

// FieldError is a single validation problem tied to a statement field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// ValidationErrors collects problems found by Validate. It is data, not a
// failure: callers decide whether to abort or carry on.
type ValidationErrors []FieldError

// CheckRequired records a "required" error for field when present is false.
func (v *ValidationErrors) CheckRequired(field string, present bool) {
	if !present {
		*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
	}
}

// HasErrors reports whether any problem was recorded.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Err returns v as an error, or nil when there are no problems.
func (v ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

// Validate checks that the statement can be turned into SQL.
// Where, OrderBy and Limit are optional and not inspected.
func Validate(stmt Statement) ValidationErrors {
	var errs ValidationErrors
	errs.CheckRequired("columnToSelect", len(stmt.Columns) > 0)
	return errs
}
