package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	global = &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvOnce sync.Once
)

// LoadEnv loads the given .env files into the process environment before any
// struct is parsed. Existing environment variables win over file values.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v. The first successful parse for a
// given struct type is cached; later calls for the same type get the cached
// copy. The default .env file is read once if present.
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// Missing .env is fine outside local development.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	global.mu.RLock()
	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		global.mu.RUnlock()
		return nil
	}
	global.mu.RUnlock()

	global.mu.Lock()
	once, ok := global.onces[key]
	if !ok {
		once = new(sync.Once)
		global.onces[key] = once
	}
	global.mu.Unlock()

	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		global.mu.Lock()
		global.values[key] = *v
		global.mu.Unlock()
	})
	if parseErr != nil {
		return parseErr
	}

	global.mu.RLock()
	defer global.mu.RUnlock()
	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	// A concurrent caller's once.Do failed; surface that as not loaded.
	return ErrConfigNotLoaded
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached config so the next Load re-parses the
// environment. Intended for tests.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	clear(global.values)
	clear(global.onces)
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.String()
}
