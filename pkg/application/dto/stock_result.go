package dto

import "github.com/vsinha/stockcheck/pkg/domain/entities"

// StockResult contains the complete output of a stock check run
type StockResult struct {
	Reports []entities.StoreReport
	Skipped []SkippedEntry
}

// SkippedEntry is a shopping list entry dropped because its lookup failed
type SkippedEntry struct {
	Entry entities.ShoppingListEntry
	Err   error
}
