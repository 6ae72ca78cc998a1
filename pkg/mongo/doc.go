// Package mongo connects to MongoDB with the official v2 driver and answers
// uniqueness lookups against its collections.
//
// Config is populated from MONGODB_* environment variables. New connects with
// retries, NewWithDatabase also selects Config.Database, and Healthcheck wraps
// a primary ping.
//
// Lookup maps rules.Lookup onto CountDocuments with a limit of one:
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	unique, err := rules.CheckUnique(ctx, mongo.NewLookup(db), "users", "email", email)
//
// Collection and field names must pass rules.ValidIdentifier, which keeps
// operator keys such as "$where" out of the filter.
package mongo
