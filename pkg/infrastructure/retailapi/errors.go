package retailapi

import (
	"fmt"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// CatalogError reports a catalog lookup that failed in transport, returned an
// error payload or a response without the expected product fields.
type CatalogError struct {
	ItemCode entities.ItemCode
	Code     string
	Message  string
	Err      error
}

func (e *CatalogError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("Error: %s for product: %s", e.Message, e.ItemCode)
	}
	return fmt.Sprintf("Error: %s, Code: %s, Item: %s", e.Message, e.Code, e.ItemCode)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// AvailabilityError reports an availability response that could not be read
type AvailabilityError struct {
	ItemCode entities.ItemCode
	Err      error
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("availability for %s: %v", e.ItemCode, e.Err)
}

func (e *AvailabilityError) Unwrap() error {
	return e.Err
}
