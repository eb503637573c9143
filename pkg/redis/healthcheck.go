package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Healthcheck returns a readiness check for client, suitable for the CLI
// startup check or a liveness endpoint.
//
// A missing client, or a server still loading its dataset, reports
// ErrRedisNotReady as well as ErrHealthcheckFailed.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return errors.Join(ErrHealthcheckFailed, ErrRedisNotReady)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			if strings.HasPrefix(err.Error(), "LOADING") {
				return errors.Join(ErrHealthcheckFailed, ErrRedisNotReady, err)
			}
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// Healthcheck checks the connection the error hashes live on.
func (s *HashStorage) Healthcheck(ctx context.Context) error {
	if s == nil {
		return Healthcheck(nil)(ctx)
	}
	return Healthcheck(s.db)(ctx)
}
