package changelog

import "strings"

// DefaultEndDelimiter terminates statements when written to a script.
const DefaultEndDelimiter = ";"

// SQL is a piece of generated SQL text.
type SQL interface {
	// SQL returns the statement text.
	SQL() string
	// EndDelimiter returns the terminator used when writing the statement to a script.
	EndDelimiter() string
}

// UnparsedSQL is trusted SQL text that is never parsed or checked.
type UnparsedSQL struct {
	text      string
	delimiter string
}

// NewUnparsedSQL wraps text, trimming surrounding whitespace.
func NewUnparsedSQL(text string) UnparsedSQL {
	return UnparsedSQL{text: strings.TrimSpace(text), delimiter: DefaultEndDelimiter}
}

// SQL returns the statement text.
func (u UnparsedSQL) SQL() string { return u.text }

// EndDelimiter returns the statement terminator.
func (u UnparsedSQL) EndDelimiter() string { return u.delimiter }

func (u UnparsedSQL) String() string { return u.text }

// Script joins statements, each followed by its end delimiter and a newline.
func Script(sqls []SQL) string {
	var sb strings.Builder
	for _, s := range sqls {
		sb.WriteString(s.SQL())
		sb.WriteString(s.EndDelimiter())
		sb.WriteByte('\n')
	}
	return sb.String()
}
