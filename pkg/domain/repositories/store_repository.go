package repositories

import (
	"errors"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// ErrStoreNotFound is returned by GetStore for ids missing from the directory
var ErrStoreNotFound = errors.New("store not found")

// StoreDirectory resolves business-unit codes to stores
type StoreDirectory interface {
	GetStore(id entities.StoreID) (*entities.Store, error)
	StoresInCountry(countryCode string) []entities.Store
}
