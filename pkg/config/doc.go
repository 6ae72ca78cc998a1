// Package config loads configuration structs from environment variables.
//
// It combines github.com/joho/godotenv, which copies dotenv files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` and `envDefault` tags.
//
// Every backend package in this module (pg, sqlite, redis, mongo, opensearch)
// exposes a Config struct with such tags, so a command only needs:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Parsed values are cached per struct type for the lifetime of the process.
// Tests that change the environment call ResetCache between cases.
package config
