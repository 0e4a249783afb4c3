package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vallespasiegos/catalog-system/internal/core/domain"
)

const (
	listKey  = "productos:list"
	cacheTTL = time.Minute
)

// ProductCache caches the catalog list in Redis. Any backend failure degrades
// to a cache miss with a warn log; serving requests never depends on Redis
// being up once the process has started.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

// Get returns the cached product list and whether it was present.
func (c *ProductCache) Get(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("product cache read failed")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Msg("product cache payload corrupt, dropping")
		_ = c.client.Del(ctx, listKey).Err()
		return nil, false
	}
	return products, true
}

// Set stores the product list with a short TTL.
func (c *ProductCache) Set(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Msg("product cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, listKey, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache write failed")
	}
}

// Invalidate drops the cached list after any catalog write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
