package pg_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/logger"
	"github.com/dmitrymomot/ruleset/pkg/pg"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.exists
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	sql   string
	args  []any
	calls int
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.calls++
	q.sql = sql
	q.args = args
	return q.row
}

func TestExistsQuery(t *testing.T) {
	t.Run("quotes identifiers", func(t *testing.T) {
		query, err := pg.ExistsQuery("users", "email")
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "users" WHERE "email" = $1)`, query)
	})

	t.Run("schema-qualified table", func(t *testing.T) {
		query, err := pg.ExistsQuery("billing.customers", "vat_id")
		require.NoError(t, err)
		assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "billing"."customers" WHERE "vat_id" = $1)`, query)
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		for _, tc := range [][2]string{
			{"users; DROP TABLE users", "email"},
			{"users", "email = email OR 1"},
			{"", "email"},
			{"users", "a.b"},
			{`"users"`, "email"},
		} {
			_, err := pg.ExistsQuery(tc[0], tc[1])
			assert.ErrorIs(t, err, rules.ErrInvalidArgument, "%q.%q", tc[0], tc[1])
		}
	})
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("binds value as parameter", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{exists: true}}
		exists, err := pg.NewLookup(q).Exists(ctx, "users", "email", "a@b.com")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, []any{"a@b.com"}, q.args)
		assert.Contains(t, q.sql, `"users"`)
	})

	t.Run("unique through rules.CheckUnique", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{exists: false}}
		unique, err := rules.CheckUnique(ctx, pg.NewLookup(q), "users", "email", "a@b.com")
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("query errors are wrapped and logged", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "users" does not exist`}
		q := &fakeQuerier{row: fakeRow{err: pgErr}}
		buf := &bytes.Buffer{}
		lookup := pg.NewLookup(q, pg.WithLogger(logger.New(logger.WithOutput(buf))))

		_, err := rules.CheckUnique(ctx, lookup, "users", "email", "a@b.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrLookupFailed)
		assert.ErrorIs(t, err, pg.ErrLookupQuery)
		assert.True(t, pg.IsUndefinedTableError(err))
		assert.Contains(t, buf.String(), "uniqueness lookup failed")
	})

	t.Run("invalid identifiers never reach the database", func(t *testing.T) {
		q := &fakeQuerier{}
		_, err := pg.NewLookup(q).Exists(ctx, "users--", "email", "x")
		assert.ErrorIs(t, err, rules.ErrInvalidArgument)
		assert.Zero(t, q.calls)
	})
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, pg.IsUndefinedColumnError(errors.Join(errors.New("ctx"), &pgconn.PgError{Code: "42703"})))
	assert.False(t, pg.IsUndefinedTableError(errors.New("plain")))
	assert.False(t, pg.IsDuplicateKeyError(nil))
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	assert.NoError(t, pg.Healthcheck(fakePinger{})(context.Background()))

	err := pg.Healthcheck(fakePinger{err: errors.New("down")})(context.Background())
	assert.ErrorIs(t, err, pg.ErrHealthcheckFailed)
}

func TestConnect(t *testing.T) {
	t.Run("empty connection string", func(t *testing.T) {
		_, err := pg.Connect(context.Background(), pg.Config{})
		assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
	})

	t.Run("unparseable connection string", func(t *testing.T) {
		_, err := pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
		assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
	})
}
