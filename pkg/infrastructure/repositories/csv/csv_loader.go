package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// ParseError reports a shopping list row that could not be parsed
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shopping list row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Loader handles loading shopping lists from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadShoppingList loads shopping list entries from a CSV file
func (l *Loader) LoadShoppingList(filename string) ([]*entities.ShoppingListEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open shopping list %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadShoppingList(file)
}

// ReadShoppingList parses a shopping list. The first row is a header and is
// skipped; remaining rows are item_code, quantity, notes. A blank quantity
// means 1 and the notes column may be omitted.
func (l *Loader) ReadShoppingList(r io.Reader) ([]*entities.ShoppingListEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read shopping list CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("shopping list CSV must have a header row")
	}

	entries := make([]*entities.ShoppingListEntry, 0, len(records)-1)
	for i, record := range records[1:] {
		row := i + 2
		if isBlankRecord(record) {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("shopping list CSV row %d: expected at least 2 columns, got %d", row, len(record))
		}

		entry, err := parseEntry(row, record)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseEntry(row int, record []string) (*entities.ShoppingListEntry, error) {
	itemCode := entities.NormalizeItemCode(record[0])

	quantity, err := parseQuantity(record[1])
	if err != nil {
		return nil, &ParseError{Row: row, Field: "quantity", Value: record[1], Err: err}
	}

	var notes string
	if len(record) > 2 {
		notes = record[2]
	}

	entry, err := entities.NewShoppingListEntry(itemCode, quantity, notes)
	if err != nil {
		return nil, fmt.Errorf("shopping list CSV row %d: %w", row, err)
	}
	return entry, nil
}

func parseQuantity(s string) (entities.Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}

	quantity, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return entities.Quantity(quantity), nil
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
