package entities

import "strings"

// ItemCode represents a retailer article number with formatting dots removed
type ItemCode string

// Quantity represents an integer count of sellable units
type Quantity int64

// NormalizeItemCode strips the readability dots from a printed article number,
// e.g. "012.345.67" becomes "01234567"
func NormalizeItemCode(raw string) ItemCode {
	return ItemCode(strings.ReplaceAll(strings.TrimSpace(raw), ".", ""))
}

// String returns the code as printed in reports
func (c ItemCode) String() string {
	return string(c)
}
