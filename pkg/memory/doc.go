// Package memory provides an in-process implementation of rules.Lookup.
//
// Store keeps one set of values per table/column pair and is safe for
// concurrent use. It is handy in tests and for small, process-local
// uniqueness constraints (reserved usernames, blocked domains, ...).
//
//	store := memory.New()
//	store.Add("users", "username", "admin", "root")
//
//	unique, err := rules.CheckUnique(ctx, store, "users", "username", "alice")
package memory
