// Package redis connects to Redis with go-redis/v9 and keeps uniqueness sets
// there.
//
// Each table/column pair maps to one set, "<prefix><table>:<column>". Lookup
// answers rules.Lookup with SISMEMBER; Add and Remove maintain the set with
// SADD and SREM. The sets are an index owned by the application: write to them
// whenever the primary store changes.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	lookup := redis.NewLookup(client, redis.WithKeyPrefix(cfg.KeyPrefix))
//	_ = lookup.Add(ctx, "users", "username", "admin", "root")
//
//	unique, err := rules.CheckUnique(ctx, lookup, "users", "username", name)
//
// Config is populated from REDIS_* environment variables.
package redis
