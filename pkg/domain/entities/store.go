package entities

import "strconv"

// StoreID is a store's business-unit code
type StoreID int

// String returns the business-unit code as text
func (id StoreID) String() string {
	return strconv.Itoa(int(id))
}

// Store is a configured store resolved against the store directory
type Store struct {
	ID          StoreID
	Name        string
	CountryCode string
}

// DisplayName returns the directory name, or the bare id when the store was
// not found in the directory
func (s Store) DisplayName() string {
	if s.Name == "" {
		return s.ID.String()
	}
	return s.Name
}
