package redis

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/ruleset/pkg/logger"
)

// SetClient is the part of redis.Cmdable used by Lookup.
type SetClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
}

// Lookup implements rules.Lookup with one Redis set per table/column pair.
// Values are stored and compared in their string form, so 42 and "42" collide.
type Lookup struct {
	client SetClient
	prefix string
	log    *slog.Logger
}

// Option configures a Lookup.
type Option func(*Lookup)

// WithKeyPrefix overrides the default "unique:" key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(l *Lookup) { l.prefix = prefix }
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(l *Lookup) {
		if log != nil {
			l.log = log
		}
	}
}

// DefaultKeyPrefix namespaces uniqueness sets.
const DefaultKeyPrefix = "unique:"

func NewLookup(client SetClient, opts ...Option) *Lookup {
	l := &Lookup{client: client, prefix: DefaultKeyPrefix, log: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key returns the set key holding the values of table/column.
func (l *Lookup) Key(table, column string) string {
	return l.prefix + table + ":" + column
}

// Exists runs SISMEMBER on the table/column set.
func (l *Lookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	start := time.Now()
	exists, err := l.client.SIsMember(ctx, l.Key(table, column), Member(value)).Result()
	if err != nil {
		l.log.ErrorContext(ctx, "uniqueness lookup failed",
			logger.Lookup("redis", table, column),
			logger.Error(err),
		)
		return false, errors.Join(ErrLookupCommand, err)
	}

	l.log.DebugContext(ctx, "uniqueness lookup",
		logger.Lookup("redis", table, column),
		slog.Bool("exists", exists),
		logger.Duration(time.Since(start)),
	)
	return exists, nil
}

// Add records values as taken. Call it after the row is committed to the
// primary store to keep the set in sync.
func (l *Lookup) Add(ctx context.Context, table, column string, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	if err := l.client.SAdd(ctx, l.Key(table, column), members(values)...).Err(); err != nil {
		return errors.Join(ErrLookupCommand, err)
	}
	return nil
}

// Remove releases values, e.g. after a row is deleted.
func (l *Lookup) Remove(ctx context.Context, table, column string, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	if err := l.client.SRem(ctx, l.Key(table, column), members(values)...).Err(); err != nil {
		return errors.Join(ErrLookupCommand, err)
	}
	return nil
}

// Member converts value to the string stored in the set.
func Member(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return string(b)
		}
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func members(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = Member(v)
	}
	return out
}
