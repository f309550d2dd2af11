// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/constants"
)

// RedisDetailCache implements [DetailCache] on Redis with a fixed TTL.
type RedisDetailCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisDetailCache constructs a Redis-backed detail cache.
func NewRedisDetailCache(client redis.Cmdable, ttl time.Duration) *RedisDetailCache {
	return &RedisDetailCache{client: client, ttl: ttl}
}

// detailKey builds "remote:detail:{type}:{id}".
func detailKey(t media.Type, id string) string {
	return fmt.Sprintf("%s%s:%s", constants.RedisPrefixRemoteDetail, t, id)
}

func (cache *RedisDetailCache) Get(ctx context.Context, t media.Type, id string) (media.MediaItem, bool, error) {
	raw, err := cache.client.Get(ctx, detailKey(t, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return media.MediaItem{}, false, nil
	}
	if err != nil {
		return media.MediaItem{}, false, fmt.Errorf("redis cache: get detail: %w", err)
	}

	var item media.MediaItem
	if err := json.Unmarshal(raw, &item); err != nil {
		// A stale or corrupt entry is treated as a miss and overwritten later.
		return media.MediaItem{}, false, nil
	}
	return item, true, nil
}

func (cache *RedisDetailCache) Set(ctx context.Context, t media.Type, id string, item media.MediaItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("redis cache: encode detail: %w", err)
	}

	if err := cache.client.Set(ctx, detailKey(t, id), raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis cache: set detail: %w", err)
	}
	return nil
}
