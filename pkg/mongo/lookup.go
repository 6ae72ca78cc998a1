package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// Counter is the part of *mongo.Collection used by Lookup.
type Counter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// Lookup implements rules.Lookup: table is a collection, column a field path.
type Lookup struct {
	collection func(name string) Counter
	log        *slog.Logger
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

// WithCollections replaces how collections are resolved by name.
func WithCollections(fn func(name string) Counter) LookupOption {
	return func(lk *Lookup) {
		if fn != nil {
			lk.collection = fn
		}
	}
}

// NewLookup returns a Lookup over the collections of db.
// db may be nil when WithCollections is supplied.
func NewLookup(db *mongo.Database, opts ...LookupOption) *Lookup {
	l := &Lookup{log: logger.Discard()}
	if db != nil {
		l.collection = func(name string) Counter { return db.Collection(name) }
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Exists counts at most one document with column equal to value.
// Dotted columns address embedded fields ("profile.email").
func (l *Lookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if l.collection == nil {
		return false, fmt.Errorf("%w: no database configured", rules.ErrInvalidArgument)
	}
	filter, err := Filter(table, column, value)
	if err != nil {
		return false, err
	}

	start := time.Now()
	n, err := l.collection(table).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		l.log.ErrorContext(ctx, "uniqueness lookup failed",
			logger.Lookup("mongo", table, column),
			logger.Error(err),
		)
		return false, errors.Join(ErrLookupQuery, err)
	}

	l.log.DebugContext(ctx, "uniqueness lookup",
		logger.Lookup("mongo", table, column),
		slog.Bool("exists", n > 0),
		logger.Duration(time.Since(start)),
	)
	return n > 0, nil
}

// Filter builds the equality filter after validating the names.
// Operator-looking names ("$where") are rejected.
func Filter(collection, field string, value any) (bson.D, error) {
	if !rules.ValidIdentifier(collection) {
		return nil, fmt.Errorf("%w: collection %q", rules.ErrInvalidArgument, collection)
	}
	if !rules.ValidIdentifier(field) {
		return nil, fmt.Errorf("%w: field %q", rules.ErrInvalidArgument, field)
	}
	return bson.D{{Key: field, Value: value}}, nil
}
