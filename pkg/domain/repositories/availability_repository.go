package repositories

import (
	"context"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// AvailabilityCatalog provides per-store stock for articles. The result holds
// one entry per configured store present in the upstream response; stores
// missing from the response are omitted.
type AvailabilityCatalog interface {
	GetProductAvailability(ctx context.Context, itemCode entities.ItemCode) ([]entities.StoreAvailability, error)
}
