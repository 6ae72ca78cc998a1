// Package pg connects to PostgreSQL with pgx/v5 and answers uniqueness
// lookups against it.
//
// Config is populated from PG_* environment variables (see pkg/config).
// Connect opens a *pgxpool.Pool with retries and Healthcheck wraps a ping for
// readiness probes. Lookup implements rules.Lookup with a single
// parameterised query:
//
//	SELECT EXISTS (SELECT 1 FROM "users" WHERE "email" = $1)
//
// Table and column names are validated with rules.ValidIdentifier and quoted
// with pgx.Identifier, so they never reach the server unescaped. Bad names are
// reported as rules.ErrInvalidArgument before any query is sent.
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	unique, err := rules.CheckUnique(ctx, pg.NewLookup(pool), "users", "email", email)
//
// A uniqueness check followed by an insert is still racy. Keep a UNIQUE
// constraint in the schema and use IsDuplicateKeyError on the insert path.
package pg
