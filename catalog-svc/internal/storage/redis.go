package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"crawingo-delivery/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisDishCache stores rendered dish details as JSON under dish:detail:<id>.
type RedisDishCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDishCache(client *redis.Client, ttl time.Duration) *RedisDishCache {
	return &RedisDishCache{Client: client, TTL: ttl}
}

func (c *RedisDishCache) Key(dishID int) string {
	return "dish:detail:" + strconv.Itoa(dishID)
}

// Get treats any redis or decode failure as a miss.
func (c *RedisDishCache) Get(ctx context.Context, dishID int) (*domain.DishDetail, bool) {
	raw, err := c.Client.Get(ctx, c.Key(dishID)).Bytes()
	if err != nil {
		return nil, false
	}
	var detail domain.DishDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, false
	}
	return &detail, true
}

func (c *RedisDishCache) Set(ctx context.Context, detail domain.DishDetail) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key(detail.ID), payload, c.TTL).Err()
}

func (c *RedisDishCache) Invalidate(ctx context.Context, dishID int) error {
	return c.Client.Del(ctx, c.Key(dishID)).Err()
}

// NoopDishCache never hits. Used when REDIS_ENABLED is false.
type NoopDishCache struct{}

func (NoopDishCache) Get(context.Context, int) (*domain.DishDetail, bool) { return nil, false }
func (NoopDishCache) Set(context.Context, domain.DishDetail) error        { return nil }
func (NoopDishCache) Invalidate(context.Context, int) error               { return nil }
