// Package core defines the shared language of the changelogsql system.
//
// This package contains:
//   - Dialect configuration (DialectConfig, IdentifierConfig)
//   - Quoting strategies and pagination families
//   - Service interfaces (Adapter) and their data types
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
