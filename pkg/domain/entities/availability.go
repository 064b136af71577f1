package entities

import (
	"fmt"
	"time"
)

// Confidence represents the upstream in-stock probability code
type Confidence int

const (
	ConfidenceHigh Confidence = iota
	ConfidenceMedium
	ConfidenceLow
)

// String method for Confidence enum
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "HIGH"
	case ConfidenceMedium:
		return "MEDIUM"
	case ConfidenceLow:
		return "LOW"
	default:
		return "Unknown"
	}
}

// ParseConfidence converts an upstream probability code
func ParseConfidence(s string) (Confidence, error) {
	switch s {
	case "HIGH":
		return ConfidenceHigh, nil
	case "MEDIUM":
		return ConfidenceMedium, nil
	case "LOW":
		return ConfidenceLow, nil
	default:
		return ConfidenceLow, fmt.Errorf("invalid confidence code: %q (expected HIGH, MEDIUM or LOW)", s)
	}
}

// LocationType is the upstream tag describing where an article is picked up
type LocationType string

const (
	LocationBoxShelf       LocationType = "BOX_SHELF"
	LocationContactStaff   LocationType = "CONTACT_STAFF"
	LocationSpecialityShop LocationType = "SPECIALITY_SHOP"
)

// LocationTag is the raw in-store location record for one part
type LocationTag struct {
	Type           LocationType
	Box            string
	Shelf          string
	SpecialityShop string
}

// Label renders the tag as a human-readable location. Unknown tags are
// returned verbatim.
func (t LocationTag) Label() string {
	switch t.Type {
	case LocationBoxShelf:
		return "Warehouse " + t.Box + "-" + t.Shelf
	case LocationContactStaff:
		return "Contact Staff"
	case LocationSpecialityShop:
		return t.SpecialityShop + " Dept."
	default:
		return string(t.Type)
	}
}

// PartLocation is where one part of an article can be found in a store
type PartLocation struct {
	PartNumber      ItemCode
	QuantityPerUnit Quantity
	LocationLabel   string
}

// NewPartLocation creates a validated PartLocation from a location tag
func NewPartLocation(partNumber ItemCode, quantityPerUnit Quantity, tag LocationTag) (*PartLocation, error) {
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if quantityPerUnit < 1 {
		return nil, fmt.Errorf("quantity per unit must be positive, got %d", quantityPerUnit)
	}

	return &PartLocation{
		PartNumber:      partNumber,
		QuantityPerUnit: quantityPerUnit,
		LocationLabel:   tag.Label(),
	}, nil
}

// ForecastPoint is one future stock estimate
type ForecastPoint struct {
	ValidDate        time.Time
	ForecastQuantity Quantity
	Confidence       Confidence
}

// StoreAvailability is the stock situation of one article at one store
type StoreAvailability struct {
	StoreID           StoreID
	StoreName         string
	ItemCode          ItemCode
	AvailableQuantity Quantity
	Confidence        Confidence
	RestockDate       *time.Time // set only when AvailableQuantity is 0
	IsMultiPart       bool
	PartLocations     []PartLocation
	Forecast          []ForecastPoint
}

// NewStoreAvailability creates a validated StoreAvailability
func NewStoreAvailability(
	storeID StoreID,
	storeName string,
	itemCode ItemCode,
	available Quantity,
	confidence Confidence,
	restockDate *time.Time,
	isMultiPart bool,
	locations []PartLocation,
	forecast []ForecastPoint,
) (*StoreAvailability, error) {
	if string(itemCode) == "" {
		return nil, fmt.Errorf("item code cannot be empty")
	}
	if available < 0 {
		return nil, fmt.Errorf("available quantity cannot be negative, got %d", available)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("item %s at store %d has no location", itemCode, storeID)
	}
	if !isMultiPart && len(locations) != 1 {
		return nil, fmt.Errorf("single-part item %s at store %d has %d locations", itemCode, storeID, len(locations))
	}
	if available > 0 {
		restockDate = nil
	}

	return &StoreAvailability{
		StoreID:           storeID,
		StoreName:         storeName,
		ItemCode:          itemCode,
		AvailableQuantity: available,
		Confidence:        confidence,
		RestockDate:       restockDate,
		IsMultiPart:       isMultiPart,
		PartLocations:     locations,
		Forecast:          forecast,
	}, nil
}

// Location returns the single location of a non multi-part article
func (a *StoreAvailability) Location() PartLocation {
	return a.PartLocations[0]
}

// FindStore returns the entry for storeID, if the store was in the response
func FindStore(availability []StoreAvailability, storeID StoreID) (*StoreAvailability, bool) {
	for i := range availability {
		if availability[i].StoreID == storeID {
			return &availability[i], true
		}
	}
	return nil, false
}
