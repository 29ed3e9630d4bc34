// Package sqlite binds the sworm connection contract to SQLite.
//
// The package is thin glue between two collaborators it does not own: the
// ORM layer above it, which speaks a closed six-case value union
// (Integer/Double/Text/Blob/Date/Null), and the go-sqlite3 driver below it,
// which speaks the wider dynamically-tagged wire value set. Everything here
// is translation and bookkeeping:
//
//   - Value and Row: the native value model handed to and from the ORM.
//   - Conn: an adapter around one dedicated driver connection, converting
//     parameters down and result cells up on every statement.
//   - The _sworm_version table: a single-row schema version record used by
//     the migration runner.
//
// # Statement routing
//
// Execute sends a statement on one of two driver paths. A statement with no
// bound parameters that does not start with SELECT goes through the simple
// exec path, which accepts DDL and multi-statement scripts. Everything else
// (any parameters, or any SELECT) goes through the parameterized query path
// so result rows come back structured.
//
// # Concurrency
//
// A Conn wraps exactly one driver connection and has a single logical
// owner. It performs no locking, caching, or retry of its own; pooling and
// retry policy belong to the caller or the driver. All blocking operations
// take a context.Context.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package sqlite
