package repositories

import (
	"context"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// ProductCatalog provides descriptive and pricing data for articles
type ProductCatalog interface {
	GetProductInfo(ctx context.Context, itemCode entities.ItemCode) (*entities.ProductInfo, error)
}
