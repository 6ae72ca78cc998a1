// Package rules is a stateless set of validation predicates for user-supplied
// text: length bounds, strict equality, character classes, date and URL
// formats, e-mail addresses, personal names and JSON documents. It also ships an
// HTML escaping helper and a uniqueness check that delegates to an injected
// Lookup.
//
// Every rule is a plain function that returns a verdict. A false verdict is a
// regular return value, never an error. Only CheckUnique can fail, and only
// because its Lookup failed or because it was called with bad arguments.
//
// # Usage
//
//	if !rules.Required(form.Name) || !rules.Name(form.Name) {
//	    // reject
//	}
//
//	unique, err := rules.CheckUnique(ctx, lookup, "users", "email", form.Email)
//	if err != nil {
//	    return err // errors.Is(err, rules.ErrLookupFailed)
//	}
//
// # Empty input
//
// The length rules pass vacuously when the trimmed value is empty. Combine them
// with Required when a value must be present.
//
// # Concurrency
//
// All functions are safe for concurrent use. Regular expressions are compiled
// once at package initialisation.
package rules
