package sink

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/redis/go-redis/v9"
)

// RedisSink publishes the document under a single Redis key, for consumers
// that load fixtures from a shared cache instead of the filesystem.
type RedisSink struct {
	client *redis.Client
	key    string
}

// NewRedisSink creates a Redis-backed sink from a connection URI.
func NewRedisSink(redisURI, key string) (*RedisSink, error) {
	if redisURI == "" {
		return nil, errors.New("redis URI is required")
	}
	if key == "" {
		return nil, errors.New("redis key is required")
	}

	uri, err := url.Parse(redisURI)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URI: %w", err)
	}

	password := ""
	if uri.User != nil {
		password, _ = uri.User.Password()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     uri.Host,
		Password: password,
		DB:       0,
	})

	return &RedisSink{
		client: client,
		key:    key,
	}, nil
}

func (s *RedisSink) Name() string {
	return "redis"
}

// Write stores the document under the configured key with no expiry. The
// value is the exact rendered bytes, same as the file and console outputs.
func (s *RedisSink) Write(ctx context.Context, doc []byte) error {
	if err := s.client.Set(ctx, s.key, doc, 0).Err(); err != nil {
		return fmt.Errorf("failed to store document under key %s: %w", s.key, err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *RedisSink) Close() error {
	return s.client.Close()
}
