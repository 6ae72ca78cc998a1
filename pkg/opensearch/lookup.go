package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// Lookup implements rules.Lookup with the _count API: table is an index,
// column a field. Use keyword fields ("email.keyword") for exact matches on
// analysed text.
type Lookup struct {
	client *opensearch.Client
	log    *slog.Logger
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

func NewLookup(client *opensearch.Client, opts ...LookupOption) *Lookup {
	l := &Lookup{client: client, log: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Exists reports whether any document in index table has column equal to value.
func (l *Lookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	body, err := CountQuery(table, column, value)
	if err != nil {
		return false, err
	}

	start := time.Now()
	res, err := l.client.Count(
		l.client.Count.WithContext(ctx),
		l.client.Count.WithIndex(table),
		l.client.Count.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return false, l.fail(ctx, table, column, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return false, l.fail(ctx, table, column, fmt.Errorf("status %d: %s", res.StatusCode, bytes.TrimSpace(msg)))
	}

	var cr countResponse
	if err := json.NewDecoder(res.Body).Decode(&cr); err != nil {
		return false, l.fail(ctx, table, column, err)
	}

	l.log.DebugContext(ctx, "uniqueness lookup",
		logger.Lookup("opensearch", table, column),
		slog.Bool("exists", cr.Count > 0),
		logger.Duration(time.Since(start)),
	)
	return cr.Count > 0, nil
}

func (l *Lookup) fail(ctx context.Context, table, column string, err error) error {
	l.log.ErrorContext(ctx, "uniqueness lookup failed",
		logger.Lookup("opensearch", table, column),
		logger.Error(err),
	)
	return errors.Join(ErrLookupQuery, err)
}

// CountQuery builds the _count request body: a term query on column.
func CountQuery(index, column string, value any) ([]byte, error) {
	if !rules.ValidIdentifier(index) {
		return nil, fmt.Errorf("%w: index %q", rules.ErrInvalidArgument, index)
	}
	if !rules.ValidIdentifier(column) {
		return nil, fmt.Errorf("%w: field %q", rules.ErrInvalidArgument, column)
	}

	body, err := json.Marshal(map[string]any{
		"query": map[string]any{
			"term": map[string]any{column: value},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rules.ErrInvalidArgument, err)
	}
	return body, nil
}
