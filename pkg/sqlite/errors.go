package sqlite

import "errors"

var (
	ErrEmptyDSN          = errors.New("empty sqlite dsn, use SQLITE_DSN env var")
	ErrFailedToOpen      = errors.New("failed to open sqlite database")
	ErrHealthcheckFailed = errors.New("sqlite healthcheck failed")
	ErrLookupQuery       = errors.New("uniqueness query failed")
)
