package validator

import (
	"context"

	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// Unique fails when lookup reports value as already present in table.column.
// Lookup errors are returned from ApplyContext, wrapped with rules.ErrLookupFailed.
func Unique(field string, lookup rules.Lookup, table, column string, value any) Rule {
	return Rule{
		Lookup: func(ctx context.Context) (bool, error) {
			return rules.CheckUnique(ctx, lookup, table, column, value)
		},
		Error: ValidationError{Field: field, Rule: "unique", Message: "has already been taken"},
	}
}
