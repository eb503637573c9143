package form

import (
	"context"

	"github.com/dmitrymomot/formkit/pkg/redis"
)

// RedisRepository implements ErrorRepository with one Redis hash per form
type RedisRepository struct {
	store *redis.HashStorage
}

// NewRedisRepository wraps a hash storage built by the redis package
func NewRedisRepository(store *redis.HashStorage) *RedisRepository {
	return &RedisRepository{store: store}
}

func (r *RedisRepository) Get(ctx context.Context, formID, field string) (string, bool, error) {
	return r.store.Get(ctx, formID, field)
}

func (r *RedisRepository) Set(ctx context.Context, formID, field, message string) error {
	return r.store.Set(ctx, formID, field, message)
}

func (r *RedisRepository) Delete(ctx context.Context, formID, field string) error {
	return r.store.Delete(ctx, formID, field)
}

func (r *RedisRepository) All(ctx context.Context, formID string) (map[string]string, error) {
	return r.store.All(ctx, formID)
}

func (r *RedisRepository) Clear(ctx context.Context, formID string) error {
	return r.store.Drop(ctx, formID)
}

// Healthcheck reports whether the Redis connection behind the repository is usable.
func (r *RedisRepository) Healthcheck(ctx context.Context) error {
	return r.store.Healthcheck(ctx)
}
