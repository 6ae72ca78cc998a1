package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Rule records the rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Verdict records a rule outcome under "verdict".
func Verdict(ok bool) slog.Attr {
	return slog.Bool("verdict", ok)
}

// Backend records the lookup backend name under "backend".
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// Table records the looked-up table (collection, index, key prefix) under "table".
func Table(name string) slog.Attr {
	return slog.String("table", name)
}

// Column records the looked-up column (field) under "column".
func Column(name string) slog.Attr {
	return slog.String("column", name)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RunID records the invocation identifier under "run_id".
// If id is empty, it returns an empty Attr.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

// Lookup groups the attributes describing one uniqueness lookup.
func Lookup(backend, table, column string) slog.Attr {
	return slog.Attr{Key: "lookup", Value: slog.GroupValue(Backend(backend), Table(table), Column(column))}
}
