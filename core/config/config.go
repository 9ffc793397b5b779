package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]any)

	// .env loading happens once per process, before the first parse.
	dotenvOnce sync.Once
)

// Load populates the struct pointed to by cfg from environment variables
// using `env` struct tags. Each configuration type is loaded once per
// application lifetime; subsequent calls for the same type return the
// cached value.
//
// A .env file in the working directory is loaded on first use. Missing
// .env files are not an error.
func Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", ErrInvalidTarget)
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidTarget)
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	t := rv.Elem().Type()

	cacheMu.RLock()
	cached, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		rv.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	cacheMu.Lock()
	cache[t] = rv.Elem().Interface()
	cacheMu.Unlock()

	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// a missing required variable should halt the process immediately.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
