package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Lookup implements rules.Lookup on top of database/sql.
type Lookup struct {
	db  Querier
	log *slog.Logger
}

// LookupOption configures a Lookup.
type LookupOption func(*Lookup)

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *slog.Logger) LookupOption {
	return func(lk *Lookup) {
		if l != nil {
			lk.log = l
		}
	}
}

func NewLookup(db Querier, opts ...LookupOption) *Lookup {
	l := &Lookup{db: db, log: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Exists reports whether table has a row with column = value.
// An attached database can be addressed as "aux.users".
func (l *Lookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	query, err := ExistsQuery(table, column)
	if err != nil {
		return false, err
	}

	start := time.Now()
	var exists bool
	if err := l.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		l.log.ErrorContext(ctx, "uniqueness lookup failed",
			logger.Lookup("sqlite", table, column),
			logger.Error(err),
		)
		return false, errors.Join(ErrLookupQuery, err)
	}

	l.log.DebugContext(ctx, "uniqueness lookup",
		logger.Lookup("sqlite", table, column),
		slog.Bool("exists", exists),
		logger.Duration(time.Since(start)),
	)
	return exists, nil
}

// ExistsQuery builds the EXISTS query with double-quoted identifiers and a single ? placeholder.
func ExistsQuery(table, column string) (string, error) {
	if !rules.ValidIdentifier(table) {
		return "", fmt.Errorf("%w: table %q", rules.ErrInvalidArgument, table)
	}
	if !rules.ValidIdentifier(column) || strings.Contains(column, ".") {
		return "", fmt.Errorf("%w: column %q", rules.ErrInvalidArgument, column)
	}

	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = quote(p)
	}

	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)", strings.Join(parts, "."), quote(column)), nil
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
