package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// Get returns ok=false on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.rdb.Set(ctx, key, value, c.ttl).Err()
}

type sentValue struct {
	GatewayID string    `json:"gatewayId"`
	SentAt    time.Time `json:"sentAt"`
}

func sentKey(contactID int64) string {
	return fmt.Sprintf("sent:%d", contactID)
}

func (c *RedisCache) StoreSent(ctx context.Context, contactID int64, gatewayID string, sentAt time.Time) error {
	b, err := json.Marshal(sentValue{
		GatewayID: gatewayID,
		SentAt:    sentAt.UTC(),
	})
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, sentKey(contactID), b, c.ttl).Err()
}

func (c *RedisCache) LastSent(ctx context.Context, contactID int64) (time.Time, bool, error) {
	raw, err := c.rdb.Get(ctx, sentKey(contactID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	var v sentValue
	if err := json.Unmarshal(raw, &v); err != nil {
		return time.Time{}, false, fmt.Errorf("decode sent receipt: %w", err)
	}
	return v.SentAt, true, nil
}

func (c *RedisCache) ClearSent(ctx context.Context, contactID int64) error {
	return c.rdb.Del(ctx, sentKey(contactID)).Err()
}
