package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Redis key layout. The price cache holds one JSON projection per product;
// the recent-changes list is a capped feed written by the worker pool.
const (
	PriceCachePrefix = "price:"
	PriceChangesKey  = "pricechanges:recent"
)

// PriceCacheKey returns the cache key for a product's price projection.
func PriceCacheKey(productID string) string { return PriceCachePrefix + productID }

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
