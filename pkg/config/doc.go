// Package config loads typed configuration structs from environment
// variables, with optional .env files for local development.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Each
// configuration type is parsed at most once per process and cached by its
// type name, so independent components can call Load for the same struct
// without re-reading the environment.
//
//	type RedisConfig struct {
//	    URL string `env:"REDIS_URL,required"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// ResetCache clears the cache between tests; LoadEnv reads explicit .env
// files before parsing.
package config
