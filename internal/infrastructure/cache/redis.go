package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

var _ services.TranscriptCache = (*RedisStore)(nil)

// RedisStore keeps transcripts in Redis so that every API replica shares them
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Get implements services.TranscriptCache
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set implements services.TranscriptCache
func (s *RedisStore) Set(ctx context.Context, key, transcript string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, transcript, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
