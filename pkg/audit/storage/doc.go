// Package storage provides audit record storage backends.
//
// SQLiteStorage persists records to a SQLite database with WAL mode and
// a busy timeout for concurrent access. The driver is selected by
// configuration: "cgo" uses mattn/go-sqlite3 and "pure" uses
// modernc.org/sqlite for builds without a C toolchain.
//
// MemoryStorage keeps records in a map and is intended for tests.
package storage
