// Package config provides type-safe environment variable loading with caching.
// Each configuration type is loaded once and cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = map[reflect.Type]any{}

	loadDotEnv = sync.OnceFunc(func() {
		// Missing .env files are expected outside development.
		_ = godotenv.Load()
	})
)

// Load parses environment variables into the given struct pointer.
// The result is cached per concrete type: subsequent calls for the same type
// return the originally loaded value.
func Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: must pass a non-nil pointer to struct, got %T", cfg)
	}

	loadDotEnv()

	mu.Lock()
	defer mu.Unlock()

	t := rv.Elem().Type()
	if cached, ok := cache[t]; ok {
		rv.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", t, err)
	}

	cache[t] = rv.Elem().Interface()
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// a missing required variable should stop the application immediately.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
