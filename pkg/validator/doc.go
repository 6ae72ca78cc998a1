// Package validator turns the predicates of package rules into field-level
// validation with error reporting.
//
// Every constructor returns a Rule: a Check (or, for Unique, a context-aware
// Lookup) together with the ValidationError to report when it fails. Apply
// and ApplyContext evaluate rules in order and aggregate failures into
// ValidationErrors, which implements error.
//
//	err := validator.ApplyContext(ctx,
//	    validator.Required("email", form.Email),
//	    validator.Email("email", form.Email),
//	    validator.MaxLength("name", form.Name, 64),
//	    validator.Unique("email", lookup, "users", "email", form.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // report verrs.Get("email"), verrs.Fields() ...
//	} else if err != nil {
//	    // lookup backend failed: errors.Is(err, rules.ErrLookupFailed)
//	}
//
// A failing lookup stops evaluation and is returned unchanged. It is never
// reported as a failed rule.
//
// Length rules pass on empty input, so combine them with Required when a
// value is mandatory.
package validator
