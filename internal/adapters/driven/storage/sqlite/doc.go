// Package sqlite provides a SQLite-based implementation of the credential tier port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It is the primary durable tier of the
// credential store: the bearer credential survives process restarts and is shared
// by every CLI invocation on the machine.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.brbadmin/data/client.db with 0600
// permissions.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
