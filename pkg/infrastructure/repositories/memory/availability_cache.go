package memory

import (
	"context"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

// AvailabilityCache memoizes availability lookups for the lifetime of a run.
// One upstream fetch serves every configured store.
type AvailabilityCache struct {
	source       repositories.AvailabilityCatalog
	availability map[entities.ItemCode][]entities.StoreAvailability
	fetches      int
}

// NewAvailabilityCache wraps source with a run-scoped cache
func NewAvailabilityCache(source repositories.AvailabilityCatalog) *AvailabilityCache {
	return &AvailabilityCache{
		source:       source,
		availability: make(map[entities.ItemCode][]entities.StoreAvailability),
	}
}

// Verify interface compliance
var _ repositories.AvailabilityCatalog = (*AvailabilityCache)(nil)

// GetProductAvailability returns the cached availability, fetching it on first use
func (c *AvailabilityCache) GetProductAvailability(
	ctx context.Context,
	itemCode entities.ItemCode,
) ([]entities.StoreAvailability, error) {
	if availability, ok := c.availability[itemCode]; ok {
		return availability, nil
	}

	c.fetches++
	availability, err := c.source.GetProductAvailability(ctx, itemCode)
	if err != nil {
		return nil, err
	}

	c.availability[itemCode] = availability
	return availability, nil
}

// Fetches returns how many lookups reached the underlying catalog
func (c *AvailabilityCache) Fetches() int {
	return c.fetches
}
