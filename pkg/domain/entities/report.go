package entities

import "github.com/shopspring/decimal"

// NotEnoughQuantityMarker prefixes the notes of lines whose stock is insufficient
const NotEnoughQuantityMarker = "NOT ENOUGH QTY!"

// MultiPartLocationLabel is the location shown on a multi-part summary line
const MultiPartLocationLabel = "Multi-Part Product. See Below:"

// LineItem is one row of a store report
type LineItem struct {
	PartNumber        ItemCode
	Description       string
	LocationLabel     string
	QuantityNeeded    Quantity
	QuantityAvailable Quantity
	Confidence        Confidence
	Color             string
	Size              string
	UnitPrice         decimal.Decimal
	Notes             string
}

// MarkInsufficient prepends the shortage marker to the line's notes
func (l *LineItem) MarkInsufficient() {
	if l.Notes == "" {
		l.Notes = NotEnoughQuantityMarker
		return
	}
	l.Notes = NotEnoughQuantityMarker + " " + l.Notes
}

// StoreReport is the aggregated view of the shopping list at one store
type StoreReport struct {
	Store                     Store
	OverallConfidence         Confidence
	TotalPrice                decimal.Decimal
	TotalItemCount            Quantity
	MeetsQuantityRequirements bool
	LineItems                 []LineItem
}
