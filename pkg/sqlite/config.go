package sqlite

import "time"

// Config holds SQLite settings, read from SQLITE_* environment variables.
type Config struct {
	DSN          string        `env:"SQLITE_DSN,required"`                  // DSN is a file path or URI, e.g. "file:app.db?mode=ro".
	MaxOpenConns int           `env:"SQLITE_MAX_OPEN_CONNS" envDefault:"1"` // MaxOpenConns bounds the database/sql pool.
	BusyTimeout  time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`  // BusyTimeout is applied with PRAGMA busy_timeout.
}
