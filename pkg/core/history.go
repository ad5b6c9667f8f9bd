package core

// DefaultHistoryTable is the name of the migration history table.
const DefaultHistoryTable = "DATABASECHANGELOG"
