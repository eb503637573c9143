package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect establishes a connection to a Redis server using the provided configuration.
// It attempts to connect multiple times based on the RetryAttempts config value,
// with a delay between attempts specified by RetryInterval.
//
// Parameters:
//   - ctx: Context for controlling the connection timeout and cancellation
//   - cfg: Configuration for the Redis connection including connection URL, timeouts, and retry settings
//
// Returns:
//   - *redis.Client: A connected Redis client if successful
//   - error: ErrEmptyConnectionURL if no URL is configured,
//     ErrFailedToParseRedisConnString if the connection URL is invalid,
//     ErrRedisNotReady if all connection attempts fail
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	attempts := max(cfg.RetryAttempts, 1)

	// Parse the redis connection string
	redisConnOpt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for attempt := range attempts {
		// Create a new redis client
		redisClient := redis.NewClient(redisConnOpt)

		// Check if the redis connection is established before proceeding with the application.
		if err := redisClient.Ping(ctx).Err(); err == nil {
			return redisClient, nil
		}

		// Close the failed client
		_ = redisClient.Close()

		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
