package entities

import "testing"

func TestNormalizeItemCode(t *testing.T) {
	testCases := []struct {
		raw      string
		expected ItemCode
	}{
		{"012.345.67", "01234567"},
		{"01234567", "01234567"},
		{" 902.123.45 ", "90212345"},
		{"...", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got := NormalizeItemCode(tc.raw)
			if got != tc.expected {
				t.Errorf("Expected item code %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestShoppingListEntry_Validation(t *testing.T) {
	entry, err := NewShoppingListEntry("00112233", 2, "kitchen")
	if err != nil {
		t.Fatalf("Expected valid entry creation to succeed: %v", err)
	}
	if entry.QuantityNeeded != 2 {
		t.Errorf("Expected quantity 2, got %d", entry.QuantityNeeded)
	}

	testCases := []struct {
		name        string
		itemCode    ItemCode
		quantity    Quantity
		expectError string
	}{
		{"empty item code", "", 1, "item code cannot be empty"},
		{"zero quantity", "00112233", 0, "quantity needed must be at least 1, got 0"},
		{"negative quantity", "00112233", -3, "quantity needed must be at least 1, got -3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewShoppingListEntry(tc.itemCode, tc.quantity, "")
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestStore_DisplayName(t *testing.T) {
	named := Store{ID: 215, Name: "Seattle"}
	if named.DisplayName() != "Seattle" {
		t.Errorf("Expected display name Seattle, got %s", named.DisplayName())
	}

	unnamed := Store{ID: 211}
	if unnamed.DisplayName() != "211" {
		t.Errorf("Expected display name 211, got %s", unnamed.DisplayName())
	}
}
