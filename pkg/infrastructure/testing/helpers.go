package testing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

// Catalog is an in-memory stand-in for both upstream endpoints. It counts
// calls per item code so tests can assert how often a lookup reached it.
type Catalog struct {
	products     map[entities.ItemCode]*entities.ProductInfo
	availability map[entities.ItemCode][]entities.StoreAvailability
	failures     map[entities.ItemCode]error

	ProductCalls      map[entities.ItemCode]int
	AvailabilityCalls map[entities.ItemCode]int
}

// NewCatalog creates an empty fake catalog
func NewCatalog() *Catalog {
	return &Catalog{
		products:          make(map[entities.ItemCode]*entities.ProductInfo),
		availability:      make(map[entities.ItemCode][]entities.StoreAvailability),
		failures:          make(map[entities.ItemCode]error),
		ProductCalls:      make(map[entities.ItemCode]int),
		AvailabilityCalls: make(map[entities.ItemCode]int),
	}
}

// Verify interface compliance
var (
	_ repositories.ProductCatalog      = (*Catalog)(nil)
	_ repositories.AvailabilityCatalog = (*Catalog)(nil)
)

// AddProduct registers catalog data for an article
func (c *Catalog) AddProduct(code, price, color, description, size string) *Catalog {
	c.products[entities.ItemCode(code)] = &entities.ProductInfo{
		ItemCode:    entities.ItemCode(code),
		UnitPrice:   decimal.RequireFromString(price),
		Color:       color,
		Description: description,
		Size:        size,
	}
	return c
}

// AddStock registers a single-part article's stock at one store
func (c *Catalog) AddStock(code string, store entities.StoreID, available entities.Quantity, confidence entities.Confidence, location string) *Catalog {
	return c.add(entities.StoreAvailability{
		StoreID:           store,
		ItemCode:          entities.ItemCode(code),
		AvailableQuantity: available,
		Confidence:        confidence,
		PartLocations: []entities.PartLocation{
			{PartNumber: entities.ItemCode(code), QuantityPerUnit: 1, LocationLabel: location},
		},
	})
}

// AddMultiPartStock registers a multi-part article's composite stock at one store
func (c *Catalog) AddMultiPartStock(code string, store entities.StoreID, available entities.Quantity, confidence entities.Confidence, parts ...entities.PartLocation) *Catalog {
	return c.add(entities.StoreAvailability{
		StoreID:           store,
		ItemCode:          entities.ItemCode(code),
		AvailableQuantity: available,
		Confidence:        confidence,
		IsMultiPart:       true,
		PartLocations:     parts,
	})
}

// Fail makes every lookup of code return err
func (c *Catalog) Fail(code string, err error) *Catalog {
	c.failures[entities.ItemCode(code)] = err
	return c
}

func (c *Catalog) add(availability entities.StoreAvailability) *Catalog {
	c.availability[availability.ItemCode] = append(c.availability[availability.ItemCode], availability)
	return c
}

// GetProductInfo returns the registered product
func (c *Catalog) GetProductInfo(_ context.Context, code entities.ItemCode) (*entities.ProductInfo, error) {
	c.ProductCalls[code]++
	if err, ok := c.failures[code]; ok {
		return nil, err
	}
	product, ok := c.products[code]
	if !ok {
		return nil, fmt.Errorf("no product registered for %s", code)
	}
	return product, nil
}

// GetProductAvailability returns the registered stock; unregistered codes
// have no stock anywhere
func (c *Catalog) GetProductAvailability(_ context.Context, code entities.ItemCode) ([]entities.StoreAvailability, error) {
	c.AvailabilityCalls[code]++
	if err, ok := c.failures[code]; ok {
		return nil, err
	}
	return c.availability[code], nil
}

// Part is a shorthand PartLocation constructor
func Part(code string, perUnit entities.Quantity, location string) entities.PartLocation {
	return entities.PartLocation{
		PartNumber:      entities.ItemCode(code),
		QuantityPerUnit: perUnit,
		LocationLabel:   location,
	}
}

// Entry is a shorthand ShoppingListEntry constructor
func Entry(code string, quantity entities.Quantity, notes string) *entities.ShoppingListEntry {
	return &entities.ShoppingListEntry{
		ItemCode:       entities.ItemCode(code),
		QuantityNeeded: quantity,
		Notes:          notes,
	}
}
