package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductInfo holds the descriptive and pricing attributes of one article
type ProductInfo struct {
	ItemCode    ItemCode
	UnitPrice   decimal.Decimal
	Color       string
	Description string
	Size        string
}

// NewProductInfo creates a validated ProductInfo
func NewProductInfo(itemCode ItemCode, unitPrice decimal.Decimal, color, description, size string) (*ProductInfo, error) {
	if string(itemCode) == "" {
		return nil, fmt.Errorf("item code cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}

	return &ProductInfo{
		ItemCode:    itemCode,
		UnitPrice:   unitPrice,
		Color:       color,
		Description: description,
		Size:        size,
	}, nil
}

// LinePrice returns the price of quantity units of this article
func (p *ProductInfo) LinePrice(quantity Quantity) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
