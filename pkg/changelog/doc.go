// Package changelog generates SQL that reads the migration history table.
//
// A caller describes what to read with a Statement (columns, an optional
// where clause, ordering tokens and a row limit), checks it with Validate and
// turns it into dialect specific text with Generate:
//
//	stmt := changelog.NewStatement(changelog.Columns("ID", "AUTHOR")...).
//		WithOrderBy("DATEEXECUTED DESC").
//		WithLimit(1)
//	if errs := changelog.Validate(stmt); errs.HasErrors() {
//		return errs
//	}
//	sqls, err := changelog.Generate(stmt, session)
//
// Generate always escapes history table identifiers with the LEGACY quoting
// strategy. The strategy is passed to the escaper as a value, so the
// session's configured strategy is never touched and concurrent generation
// against one session is safe.
package changelog
