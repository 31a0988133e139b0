// Package cache provides the redis client used for token blacklisting and
// liveness probing.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options defines the configuration parameters for the redis connection.
type Options struct {
	// Addr is the host:port of the redis server.
	Addr string
	// Password authenticates the connection; empty disables AUTH.
	Password string
	// DB selects the logical redis database.
	DB int
}

// New creates a redis client and verifies the connection with a ping.
func New(ctx context.Context, options Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         options.Addr,
		Password:     options.Password,
		DB:           options.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	return client, nil
}
