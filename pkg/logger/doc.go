// Package logger builds *slog.Logger values for the ruleset command and the
// lookup backends.
//
// New takes functional options: output format (text or json), minimum level,
// static attributes and ContextExtractor callbacks. The resulting handler is
// wrapped in LogHandlerDecorator, which runs the extractors for each record so
// values stored in a context.Context (for example a run identifier) end up in
// the output.
//
// attr.go holds constructors for the attribute keys used across the module
// (rule, verdict, backend, table, column, run_id) so they are spelled the same
// everywhere.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "rulecheck"),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        id, _ := ctx.Value(runIDKey{}).(string)
//	        return logger.RunID(id), id != ""
//	    }),
//	)
//	log.DebugContext(ctx, "lookup finished",
//	    logger.Lookup("pg", "users", "email"),
//	    logger.Duration(time.Since(start)),
//	)
package logger
