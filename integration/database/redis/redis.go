package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection settings with environment variable mapping.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"500ms"`
}

// Connect creates a Redis client and waits until it answers PING or the
// connect timeout expires.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseRedisConnString, err)
	}

	client := redis.NewClient(opts)

	deadline := time.Now().Add(cfg.ConnectTimeout)
	for {
		if err = client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		if time.Now().After(deadline) {
			_ = client.Close()
			return nil, fmt.Errorf("%w: %v", ErrRedisNotReady, err)
		}

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}
}

// Healthcheck returns a health check function for monitoring connectivity.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
