package cmd

import "time"

// AppConfig holds the CLI settings, read from the environment (and .env).
type AppConfig struct {
	Env           string        `env:"APP_ENV" envDefault:"development"`   // Env selects logger defaults: development, staging or production.
	Name          string        `env:"APP_NAME" envDefault:"rulecheck"`    // Name is logged as the service attribute.
	LogLevel      string        `env:"LOG_LEVEL"`                          // LogLevel overrides the environment default level.
	LogFormat     string        `env:"LOG_FORMAT"`                         // LogFormat overrides the environment default format (json or text).
	Backend       string        `env:"UNIQUE_BACKEND" envDefault:"memory"` // Backend answers uniqueness lookups: memory, pg, sqlite, redis, mongo or opensearch.
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"5s"`     // LookupTimeout bounds connecting plus one lookup or healthcheck.
	MemorySeed    string        `env:"MEMORY_SEED_FILE"`                   // MemorySeed is a YAML file of existing values for the memory backend.
}
