// Package service provides infrastructure adapters for tracking ingest.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	trackingDomain "github.com/allisson/leadmail/internal/tracking/domain"
)

// RedisDeduper remembers seen engagement events in Redis with SETNX.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDeduper creates a deduper whose keys expire after ttl.
func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: ttl}
}

// Acquire reports true the first time an event is seen within the ttl.
func (d *RedisDeduper) Acquire(ctx context.Context, kind trackingDomain.Kind, id uuid.UUID) (bool, error) {
	first, err := d.client.SetNX(ctx, dedupKey(kind, id), 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire tracking key: %w", err)
	}
	return first, nil
}

// Release forgets an event so the next request retries the write.
func (d *RedisDeduper) Release(ctx context.Context, kind trackingDomain.Kind, id uuid.UUID) error {
	if err := d.client.Del(ctx, dedupKey(kind, id)).Err(); err != nil {
		return fmt.Errorf("failed to release tracking key: %w", err)
	}
	return nil
}

func dedupKey(kind trackingDomain.Kind, id uuid.UUID) string {
	return "tracking:" + string(kind) + ":" + id.String()
}
