// Package redis wraps the go-redis client used by the record store
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	DB           int
	Password     string
	PoolSize     int
	DialTimeout  time.Duration
	MaxRetries   int
	UseTLS       bool
	PingOnCreate bool
}

// NewClient creates a Redis client for a single instance. Redis connects
// lazily unless PingOnCreate is set.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:        endpoint,
		DB:          opts.DB,
		Password:    opts.Password,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
		MaxRetries:  opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client := redis.NewClient(redisOpts)

	if opts.PingOnCreate {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, err
		}
	}

	return client, nil
}
