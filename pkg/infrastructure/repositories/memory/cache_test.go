package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

type countingCatalog struct {
	calls map[entities.ItemCode]int
	fail  map[entities.ItemCode]bool
}

func newCountingCatalog() *countingCatalog {
	return &countingCatalog{
		calls: make(map[entities.ItemCode]int),
		fail:  make(map[entities.ItemCode]bool),
	}
}

func (c *countingCatalog) GetProductInfo(_ context.Context, code entities.ItemCode) (*entities.ProductInfo, error) {
	c.calls[code]++
	if c.fail[code] {
		return nil, errors.New("upstream unavailable")
	}
	return &entities.ProductInfo{ItemCode: code, UnitPrice: decimal.RequireFromString("19.99")}, nil
}

func (c *countingCatalog) GetProductAvailability(_ context.Context, code entities.ItemCode) ([]entities.StoreAvailability, error) {
	c.calls[code]++
	if c.fail[code] {
		return nil, errors.New("upstream unavailable")
	}
	return []entities.StoreAvailability{{StoreID: 215, ItemCode: code, AvailableQuantity: 5}}, nil
}

func TestProductCache_FetchesOncePerItem(t *testing.T) {
	ctx := context.Background()
	source := newCountingCatalog()
	cache := NewProductCache(source)

	first, err := cache.GetProductInfo(ctx, "00112233")
	require.NoError(t, err)
	second, err := cache.GetProductInfo(ctx, "00112233")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, source.calls["00112233"])
	assert.Equal(t, 1, cache.Fetches())

	_, err = cache.GetProductInfo(ctx, "44556677")
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Fetches())
	assert.Equal(t, 2, cache.Len())
}

func TestProductCache_DoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	source := newCountingCatalog()
	source.fail["00112233"] = true
	cache := NewProductCache(source)

	_, err := cache.GetProductInfo(ctx, "00112233")
	require.Error(t, err)
	_, err = cache.GetProductInfo(ctx, "00112233")
	require.Error(t, err)

	assert.Equal(t, 2, source.calls["00112233"])
	assert.Equal(t, 0, cache.Len())
}

func TestAvailabilityCache_FetchesOncePerItem(t *testing.T) {
	ctx := context.Background()
	source := newCountingCatalog()
	cache := NewAvailabilityCache(source)

	for i := 0; i < 3; i++ {
		availability, err := cache.GetProductAvailability(ctx, "00112233")
		require.NoError(t, err)
		require.Len(t, availability, 1)
		assert.Equal(t, entities.Quantity(5), availability[0].AvailableQuantity)
	}

	assert.Equal(t, 1, source.calls["00112233"])
	assert.Equal(t, 1, cache.Fetches())
}
