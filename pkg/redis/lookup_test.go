package redis_test

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/redis"
	"github.com/dmitrymomot/ruleset/pkg/rules"
)

// fakeSets is an in-process stand-in for the set commands.
type fakeSets struct {
	sets map[string]map[string]struct{}
	err  error
}

func newFakeSets() *fakeSets {
	return &fakeSets{sets: make(map[string]map[string]struct{})}
}

func (f *fakeSets) SIsMember(_ context.Context, key string, member any) *goredis.BoolCmd {
	if f.err != nil {
		return goredis.NewBoolResult(false, f.err)
	}
	_, ok := f.sets[key][member.(string)]
	return goredis.NewBoolResult(ok, nil)
}

func (f *fakeSets) SAdd(_ context.Context, key string, members ...any) *goredis.IntCmd {
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]struct{})
	}
	for _, m := range members {
		f.sets[key][m.(string)] = struct{}{}
	}
	return goredis.NewIntResult(int64(len(members)), nil)
}

func (f *fakeSets) SRem(_ context.Context, key string, members ...any) *goredis.IntCmd {
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	for _, m := range members {
		delete(f.sets[key], m.(string))
	}
	return goredis.NewIntResult(int64(len(members)), nil)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("key layout", func(t *testing.T) {
		assert.Equal(t, "unique:users:email", redis.NewLookup(newFakeSets()).Key("users", "email"))
		assert.Equal(t, "app:users:email", redis.NewLookup(newFakeSets(), redis.WithKeyPrefix("app:")).Key("users", "email"))
	})

	t.Run("add, check, remove", func(t *testing.T) {
		sets := newFakeSets()
		lookup := redis.NewLookup(sets)
		require.NoError(t, lookup.Add(ctx, "users", "username", "admin", "root"))
		assert.Contains(t, sets.sets, "unique:users:username")

		unique, err := rules.CheckUnique(ctx, lookup, "users", "username", "admin")
		require.NoError(t, err)
		assert.False(t, unique)

		require.NoError(t, lookup.Remove(ctx, "users", "username", "admin"))
		unique, err = rules.CheckUnique(ctx, lookup, "users", "username", "admin")
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("values compare by string form", func(t *testing.T) {
		lookup := redis.NewLookup(newFakeSets())
		require.NoError(t, lookup.Add(ctx, "orders", "number", 1001))

		exists, err := lookup.Exists(ctx, "orders", "number", "1001")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("command errors are wrapped", func(t *testing.T) {
		sets := newFakeSets()
		sets.err = errors.New("connection reset")
		lookup := redis.NewLookup(sets)

		_, err := rules.CheckUnique(ctx, lookup, "users", "email", "a@b.com")
		assert.ErrorIs(t, err, rules.ErrLookupFailed)
		assert.ErrorIs(t, err, redis.ErrLookupCommand)
		assert.ErrorIs(t, lookup.Add(ctx, "users", "email", "x"), redis.ErrLookupCommand)
		assert.ErrorIs(t, lookup.Remove(ctx, "users", "email", "x"), redis.ErrLookupCommand)
	})

	t.Run("no values is a no-op", func(t *testing.T) {
		sets := newFakeSets()
		sets.err = errors.New("must not be called")
		lookup := redis.NewLookup(sets)
		assert.NoError(t, lookup.Add(ctx, "users", "email"))
		assert.NoError(t, lookup.Remove(ctx, "users", "email"))
	})
}

func TestMember(t *testing.T) {
	assert.Equal(t, "abc", redis.Member("abc"))
	assert.Equal(t, "raw", redis.Member([]byte("raw")))
	assert.Equal(t, "42", redis.Member(42))
	assert.Equal(t, "true", redis.Member(true))
	assert.Equal(t, "10.0.0.1", redis.Member(netip.MustParseAddr("10.0.0.1")))
}

func TestConnect(t *testing.T) {
	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}
