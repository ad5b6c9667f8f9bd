// Package all registers every built-in dialect.
//
// Import it for its side effects:
//
//	import _ "github.com/leapstack-labs/changelogsql/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/ansi"       // ANSI SQL
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/databricks" // Databricks SQL
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/db2"        // Db2 LUW and z/OS
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/duckdb"     // DuckDB
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/h2"         // H2
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/mssql"      // SQL Server
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/mysql"      // MySQL and MariaDB
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/oracle"     // Oracle
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/postgres"   // PostgreSQL
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/snowflake"  // Snowflake
	_ "github.com/leapstack-labs/changelogsql/pkg/dialects/sqlite"     // SQLite
)
