package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-settings/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RateCache implements ports.RateCache. Each fiat has its own key holding the
// BTC price as a decimal string.
type RateCache struct {
	client goredis.UniversalClient
}

func NewRateCache(client goredis.UniversalClient) *RateCache {
	return &RateCache{client: client}
}

// Get returns the cached price; ok is false on a miss.
func (c *RateCache) Get(ctx context.Context, fiat domain.Fiat) (float64, bool, error) {
	price, err := c.client.Get(ctx, rateKey(fiat)).Float64()
	if errors.Is(err, goredis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get rate: %w", err)
	}
	return price, true, nil
}

func (c *RateCache) Set(ctx context.Context, fiat domain.Fiat, price float64, ttl time.Duration) error {
	if err := c.client.Set(ctx, rateKey(fiat), price, ttl).Err(); err != nil {
		return fmt.Errorf("redis set rate: %w", err)
	}
	return nil
}

func rateKey(fiat domain.Fiat) string {
	return rateKeyPrefix + fiat.String()
}
