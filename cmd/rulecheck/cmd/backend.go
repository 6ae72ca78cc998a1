package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ruleset/pkg/config"
	"github.com/dmitrymomot/ruleset/pkg/memory"
	"github.com/dmitrymomot/ruleset/pkg/mongo"
	"github.com/dmitrymomot/ruleset/pkg/opensearch"
	"github.com/dmitrymomot/ruleset/pkg/pg"
	"github.com/dmitrymomot/ruleset/pkg/redis"
	"github.com/dmitrymomot/ruleset/pkg/rules"
	"github.com/dmitrymomot/ruleset/pkg/sqlite"
)

// backend is a connected uniqueness lookup together with its healthcheck.
type backend struct {
	name   string
	lookup rules.Lookup
	health func(context.Context) error
	close  func()
}

func noopHealth(context.Context) error { return nil }

// openBackend connects the backend named by UNIQUE_BACKEND, loading its own
// configuration from the environment.
func openBackend(ctx context.Context, cfg AppConfig, log *slog.Logger) (*backend, error) {
	switch cfg.Backend {
	case "memory":
		store := memory.New()
		if cfg.MemorySeed != "" {
			if err := seedStore(store, cfg.MemorySeed); err != nil {
				return nil, err
			}
		}
		return &backend{name: cfg.Backend, lookup: store, health: noopHealth, close: func() {}}, nil

	case "pg":
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, err
		}
		return &backend{
			name:   cfg.Backend,
			lookup: pg.NewLookup(pool, pg.WithLogger(log)),
			health: pg.Healthcheck(pool),
			close:  pool.Close,
		}, nil

	case "sqlite":
		var sc sqlite.Config
		if err := config.Load(&sc); err != nil {
			return nil, err
		}
		db, err := sqlite.Open(ctx, sc)
		if err != nil {
			return nil, err
		}
		return &backend{
			name:   cfg.Backend,
			lookup: sqlite.NewLookup(db, sqlite.WithLogger(log)),
			health: sqlite.Healthcheck(db),
			close:  func() { _ = db.Close() },
		}, nil

	case "redis":
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, err
		}
		return &backend{
			name:   cfg.Backend,
			lookup: redis.NewLookup(client, redis.WithKeyPrefix(rc.KeyPrefix), redis.WithLogger(log)),
			health: redis.Healthcheck(client),
			close:  func() { _ = client.Close() },
		}, nil

	case "mongo":
		var mc mongo.Config
		if err := config.Load(&mc); err != nil {
			return nil, err
		}
		client, err := mongo.New(ctx, mc)
		if err != nil {
			return nil, err
		}
		return &backend{
			name:   cfg.Backend,
			lookup: mongo.NewLookup(client.Database(mc.Database), mongo.WithLogger(log)),
			health: mongo.Healthcheck(client),
			close:  func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case "opensearch":
		var oc opensearch.Config
		if err := config.Load(&oc); err != nil {
			return nil, err
		}
		client, err := opensearch.New(ctx, oc, nil)
		if err != nil {
			return nil, err
		}
		return &backend{
			name:   cfg.Backend,
			lookup: opensearch.NewLookup(client, opensearch.WithLogger(log)),
			health: opensearch.Healthcheck(client),
			close:  func() {},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// seedStore loads a YAML document of the form
//
//	users:
//	  email: [taken@example.com, admin@example.com]
//
// into store.
func seedStore(store *memory.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeedFile, err)
	}

	var seed map[string]map[string][]any
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSeedFile, path, err)
	}

	for table, columns := range seed {
		for column, values := range columns {
			if err := store.Add(table, column, values...); err != nil {
				return fmt.Errorf("%w: %s.%s: %w", ErrSeedFile, table, column, err)
			}
		}
	}
	return nil
}
