// Package redis provides helpers for connecting to a Redis server and for
// keeping per-form field state in Redis hashes.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the connection using the supplied configuration.
//   - HashStorage, a thin wrapper that stores one hash per id under a key
//     prefix with an optional idle TTL.
//   - Healthcheck and HashStorage.Healthcheck, for liveness and readiness checks;
//     a server still loading its dataset reports ErrRedisNotReady.
//
// Config fields can be populated from environment variables via
// github.com/caarlos0/env.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := redis.NewHashStorageWithConfig(client, cfg)
//	if err := store.Set(ctx, "signup", "email", "Please enter a valid email address"); err != nil {
//	    return err
//	}
//
// # Errors
//
// Sentinel errors such as ErrRedisNotReady are joined with the underlying
// go-redis error using errors.Join, so errors.Is works on both.
package redis
