package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache holds one parsed value per configuration type.
// Each type is parsed at most once until it is forgotten.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newTypeCache() *typeCache {
	return &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *typeCache) get(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[name]
	return v, ok
}

func (c *typeCache) once(name string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, ok := c.onces[name]
	if !ok {
		o = new(sync.Once)
		c.onces[name] = o
	}
	return o
}

func (c *typeCache) store(name string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[name] = v
}

func (c *typeCache) forget(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, name)
	delete(c.onces, name)
}

func (c *typeCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = make(map[string]any)
	c.onces = make(map[string]*sync.Once)
}

var (
	cache = newTypeCache()

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its env tags.
// The first call reads ./.env when present. Each configuration type is parsed
// once; later calls copy the cached value.
//
//	var cfg form.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env is normal outside local development.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()
	if cached, ok := cache.get(name); ok {
		*v = cached.(T)
		return nil
	}

	var err error
	cache.once(name).Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}
		cache.store(name, *v)
	})
	if err != nil {
		return err
	}

	// Concurrent callers that lost the once race read the winner's value.
	if cached, ok := cache.get(name); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics on failure. Use it for configuration
// a command cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig re-parses the environment into v, replacing any cached copy of T.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	cache.forget(typeName[T]())
	return Load(v)
}

// LoadEnv reads the given .env files into the process environment.
// Later files override earlier ones and any value already set. With no paths
// it reads ./.env. Cached configurations are dropped so the next Load sees
// the new values.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	cache.reset()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration.
func ResetCache() {
	cache.reset()
}

// typeName keys the cache by import path so equally named types from
// different packages (form.Config, redis.Config) do not collide.
func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() != "" && t.Name() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
