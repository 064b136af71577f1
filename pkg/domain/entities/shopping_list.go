package entities

import "fmt"

// ShoppingListEntry is one requested article from the input list
type ShoppingListEntry struct {
	ItemCode       ItemCode
	QuantityNeeded Quantity
	Notes          string
}

// NewShoppingListEntry creates a validated ShoppingListEntry
func NewShoppingListEntry(itemCode ItemCode, quantity Quantity, notes string) (*ShoppingListEntry, error) {
	if string(itemCode) == "" {
		return nil, fmt.Errorf("item code cannot be empty")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity needed must be at least 1, got %d", quantity)
	}

	return &ShoppingListEntry{
		ItemCode:       itemCode,
		QuantityNeeded: quantity,
		Notes:          notes,
	}, nil
}
