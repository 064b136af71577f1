package memory

import (
	"context"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

// ProductCache memoizes catalog lookups for the lifetime of a run. Entries are
// never invalidated and failed lookups are not cached.
type ProductCache struct {
	source   repositories.ProductCatalog
	products map[entities.ItemCode]*entities.ProductInfo
	fetches  int
}

// NewProductCache wraps source with a run-scoped cache
func NewProductCache(source repositories.ProductCatalog) *ProductCache {
	return &ProductCache{
		source:   source,
		products: make(map[entities.ItemCode]*entities.ProductInfo),
	}
}

// Verify interface compliance
var _ repositories.ProductCatalog = (*ProductCache)(nil)

// GetProductInfo returns the cached product, fetching it on first use
func (c *ProductCache) GetProductInfo(ctx context.Context, itemCode entities.ItemCode) (*entities.ProductInfo, error) {
	if product, ok := c.products[itemCode]; ok {
		return product, nil
	}

	c.fetches++
	product, err := c.source.GetProductInfo(ctx, itemCode)
	if err != nil {
		return nil, err
	}

	c.products[itemCode] = product
	return product, nil
}

// Fetches returns how many lookups reached the underlying catalog
func (c *ProductCache) Fetches() int {
	return c.fetches
}

// Len returns the number of cached products
func (c *ProductCache) Len() int {
	return len(c.products)
}
