package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// redisKey is the fixed key holding the whole collection document.
const redisKey = "stakemap:maps"

// RedisBackend persists the collection as one JSON document under a fixed
// Redis key. Useful when several machines should see the same maps; the
// whole-document write model is unchanged, so concurrent writers still
// race last-write-wins exactly like two browser tabs on shared storage.
type RedisBackend struct {
	rdb *redis.Client
}

// NewRedisBackend creates a Redis-backed store backend.
func NewRedisBackend(opts *redis.Options) *RedisBackend {
	return &RedisBackend{rdb: redis.NewClient(opts)}
}

// Ping verifies connectivity. Useful at startup before the first command.
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

func (b *RedisBackend) Load(ctx context.Context) ([]stakemap.Map, bool, error) {
	data, err := b.rdb.Get(ctx, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", redisKey, err)
	}

	var maps []stakemap.Map
	if err := json.Unmarshal(data, &maps); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", redisKey, err)
	}
	return maps, true, nil
}

func (b *RedisBackend) Save(ctx context.Context, maps []stakemap.Map) error {
	data, err := json.Marshal(maps)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := b.rdb.Set(ctx, redisKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", redisKey, err)
	}
	return nil
}

func (b *RedisBackend) Clear(ctx context.Context) error {
	if err := b.rdb.Del(ctx, redisKey).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", redisKey, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}

var _ Backend = (*RedisBackend)(nil)
