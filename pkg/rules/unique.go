package rules

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Lookup answers whether a row with column = value exists in table.
// Implementations live outside this package (see pkg/pg, pkg/redis, pkg/memory...).
type Lookup interface {
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(ctx context.Context, table, column string, value any) (bool, error)

// Exists calls f(ctx, table, column, value).
func (f LookupFunc) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	return f(ctx, table, column, value)
}

// Optional schema qualifier followed by the name.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidIdentifier reports whether name is a plain SQL-style identifier,
// optionally qualified with a schema ("public.users").
func ValidIdentifier(name string) bool {
	return identifierRegex.MatchString(name)
}

// CheckUnique reports whether no row in table has column equal to value.
//
// Errors from lookup are returned joined with ErrLookupFailed, so callers can
// match on either. A failed lookup never yields a verdict.
func CheckUnique(ctx context.Context, lookup Lookup, table, column string, value any) (bool, error) {
	if lookup == nil {
		return false, fmt.Errorf("%w: nil lookup", ErrInvalidArgument)
	}
	if table == "" || column == "" {
		return false, fmt.Errorf("%w: table and column are required", ErrInvalidArgument)
	}

	exists, err := lookup.Exists(ctx, table, column, value)
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}

	return !exists, nil
}
