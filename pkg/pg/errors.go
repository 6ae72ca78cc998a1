package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrLookupQuery              = errors.New("uniqueness query failed")
)

// IsUndefinedTableError detects references to a missing table (SQLSTATE 42P01).
func IsUndefinedTableError(err error) bool {
	return hasCode(err, "42P01")
}

// IsUndefinedColumnError detects references to a missing column (SQLSTATE 42703).
func IsUndefinedColumnError(err error) bool {
	return hasCode(err, "42703")
}

// IsDuplicateKeyError detects unique constraint violations (SQLSTATE 23505),
// the database-side counterpart of a failed uniqueness check.
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, "23505")
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
