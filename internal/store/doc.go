// Package store provides a SQLite-backed JSON document store queried with
// OData.
//
// Documents are kept as JSON text, one per row, in the table read by the
// sqlite dialect (see package dialect/sqlite). Queries are translated with
// that dialect and executed directly, so a store doubles as an end-to-end
// check of the generated SQL.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - One open connection, so ":memory:" databases behave like files
//
// Rows without an ORDER BY come back in insertion order (seq ASC).
package store
