package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "formkit:errors"

// HashStorage keeps one Redis hash per id under "<prefix>:<id>".
// Every write refreshes the hash TTL when one is configured.
type HashStorage struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// HashOption configures a HashStorage.
type HashOption func(*HashStorage)

// WithKeyPrefix sets the key namespace. Empty prefixes are ignored.
func WithKeyPrefix(prefix string) HashOption {
	return func(s *HashStorage) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithTTL expires idle hashes. Zero or negative disables expiry.
func WithTTL(ttl time.Duration) HashOption {
	return func(s *HashStorage) {
		s.ttl = max(ttl, 0)
	}
}

// NewHashStorage wraps a go-redis client.
func NewHashStorage(client redis.UniversalClient, opts ...HashOption) *HashStorage {
	s := &HashStorage{
		db:     client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHashStorageWithConfig applies KeyPrefix and TTL from cfg.
func NewHashStorageWithConfig(client redis.UniversalClient, cfg Config) *HashStorage {
	return NewHashStorage(client, WithKeyPrefix(cfg.KeyPrefix), WithTTL(cfg.TTL))
}

// Key returns the Redis key holding the hash for id.
func (s *HashStorage) Key(id string) string {
	return s.prefix + ":" + id
}

// Get returns the value of field, reporting false when it is absent.
func (s *HashStorage) Get(ctx context.Context, id, field string) (string, bool, error) {
	if id == "" {
		return "", false, ErrEmptyHashID
	}
	val, err := s.db.HGet(ctx, s.Key(id), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set writes field and refreshes the expiry in one round trip.
func (s *HashStorage) Set(ctx context.Context, id, field, value string) error {
	if id == "" {
		return ErrEmptyHashID
	}
	key := s.Key(id)
	_, err := s.db.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	return err
}

// Delete removes field. Missing fields are not an error.
func (s *HashStorage) Delete(ctx context.Context, id, field string) error {
	if id == "" {
		return ErrEmptyHashID
	}
	return s.db.HDel(ctx, s.Key(id), field).Err()
}

// All returns a copy of every field in the hash. A missing hash yields an empty map.
func (s *HashStorage) All(ctx context.Context, id string) (map[string]string, error) {
	if id == "" {
		return nil, ErrEmptyHashID
	}
	return s.db.HGetAll(ctx, s.Key(id)).Result()
}

// Len reports how many fields the hash holds.
func (s *HashStorage) Len(ctx context.Context, id string) (int64, error) {
	if id == "" {
		return 0, ErrEmptyHashID
	}
	return s.db.HLen(ctx, s.Key(id)).Result()
}

// Drop removes the whole hash.
func (s *HashStorage) Drop(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyHashID
	}
	return s.db.Del(ctx, s.Key(id)).Err()
}

// Conn returns the underlying Redis client for advanced operations.
func (s *HashStorage) Conn() redis.UniversalClient {
	return s.db
}
