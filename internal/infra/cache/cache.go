package cache

import (
	"context"
	"errors"

	domproduct "example.com/dropship-manager/internal/domain/product"
)

// ProductListCache caches catalog list results keyed by filter. Invalidate
// drops every cached list at once; product writes are rare enough that a
// coarse flush beats per-key bookkeeping.
type ProductListCache interface {
	Get(ctx context.Context, key string) ([]*domproduct.Product, error)
	Set(ctx context.Context, key string, products []*domproduct.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
