package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	domproduct "example.com/dropship-manager/internal/domain/product"
)

const versionKey = "products:ver"

// RedisCache keys each cached list with a version counter; Invalidate just
// bumps the counter, so stale entries fall out via TTL instead of needing a
// SCAN.
type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]*domproduct.Product, error) {
	data, err := r.client.Get(ctx, r.versionedKey(ctx, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var products []*domproduct.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal product list failed: %w", err)
	}
	return products, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, products []*domproduct.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal product list failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, r.versionedKey(ctx, key), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Invalidate(ctx context.Context) error {
	if err := r.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("redis incr failed: %w", err)
	}
	return nil
}

func (r *RedisCache) versionedKey(ctx context.Context, key string) string {
	ver, err := r.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		ver = 0
	}
	return fmt.Sprintf("products:v%d:%s", ver, key)
}
