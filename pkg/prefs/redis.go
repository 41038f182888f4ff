package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridboard/gridboard/pkg/retry"
)

// RedisStore is a Redis-backed layout store for multi-instance deployments.
// Documents are stored as JSON values under a namespaced key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures a Redis store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL expires idle layout documents. Zero means no expiration.
	TTL time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

func redisKey(key string) string {
	return "gridboard:layout:" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (*LayoutDocument, error) {
	data, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &retry.TransientError{Err: fmt.Errorf("redis get: %w", err)}
	}
	var doc LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &doc, nil
}

func (s *RedisStore) Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error) {
	doc, err := s.Get(ctx, key)
	if err == ErrNotFound {
		doc = &LayoutDocument{Key: key}
	} else if err != nil {
		return nil, err
	}

	patch.Apply(doc, time.Now().UTC())

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(key), data, s.ttl).Err(); err != nil {
		return nil, &retry.TransientError{Err: fmt.Errorf("redis set: %w", err)}
	}
	return doc, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return &retry.TransientError{Err: fmt.Errorf("redis del: %w", err)}
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
