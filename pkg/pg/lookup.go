package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// Querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by Lookup.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Lookup implements rules.Lookup on top of a PostgreSQL connection.
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

// NewLookup returns a Lookup that queries db.
func NewLookup(db Querier, opts ...LookupOption) *Lookup {
	l := &Lookup{db: db, log: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Exists reports whether table has a row with column = value.
// table may be schema-qualified ("billing.customers").
func (l *Lookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	query, err := ExistsQuery(table, column)
	if err != nil {
		return false, err
	}

	start := time.Now()
	var exists bool
	if err := l.db.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		l.log.ErrorContext(ctx, "uniqueness lookup failed",
			logger.Lookup("pg", table, column),
			logger.Error(err),
		)
		return false, errors.Join(ErrLookupQuery, err)
	}

	l.log.DebugContext(ctx, "uniqueness lookup",
		logger.Lookup("pg", table, column),
		slog.Bool("exists", exists),
		logger.Duration(time.Since(start)),
	)
	return exists, nil
}

// ExistsQuery builds the parameterised EXISTS query for table and column.
// Identifiers are validated and quoted; the value is always bound as $1.
func ExistsQuery(table, column string) (string, error) {
	if !rules.ValidIdentifier(table) {
		return "", fmt.Errorf("%w: table %q", rules.ErrInvalidArgument, table)
	}
	if !rules.ValidIdentifier(column) || strings.Contains(column, ".") {
		return "", fmt.Errorf("%w: column %q", rules.ErrInvalidArgument, column)
	}

	return fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier(strings.Split(table, ".")).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	), nil
}
