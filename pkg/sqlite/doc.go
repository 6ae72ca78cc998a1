// Package sqlite answers uniqueness lookups against a SQLite database through
// database/sql and github.com/mattn/go-sqlite3 (cgo).
//
// It mirrors pkg/pg: Config from SQLITE_* variables, Open with a ping,
// Healthcheck, and a Lookup that runs
//
//	SELECT EXISTS (SELECT 1 FROM "users" WHERE "email" = ?)
//
// with validated, quoted identifiers.
package sqlite
