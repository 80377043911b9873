package cache

import (
	"context"
	"time"

	"github.com/Domenick1991/bookingpay/config"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type RedisCache struct {
	client  *redis.Client
	costTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, costTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		costTTL: costTTL,
	}
}

func (c *RedisCache) GetCost(ctx context.Context, bookingRef string) (decimal.Decimal, bool, error) {
	raw, err := c.client.Get(ctx, costKey(bookingRef)).Result()
	if err != nil {
		if err == redis.Nil {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	cost, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, err
	}
	return cost, true, nil
}

func (c *RedisCache) SetCost(ctx context.Context, bookingRef string, cost decimal.Decimal) error {
	return c.client.Set(ctx, costKey(bookingRef), cost.String(), c.costTTL).Err()
}

func costKey(bookingRef string) string {
	return "cache:cost:" + bookingRef
}
