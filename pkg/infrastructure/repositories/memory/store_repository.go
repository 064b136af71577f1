package memory

import (
	"fmt"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

// StoreRepository provides in-memory store directory storage
type StoreRepository struct {
	stores    []entities.Store
	storesMap map[entities.StoreID]int
}

// NewStoreRepository creates a new in-memory store repository
func NewStoreRepository(expectedStores int) *StoreRepository {
	return &StoreRepository{
		stores:    make([]entities.Store, 0, expectedStores),
		storesMap: make(map[entities.StoreID]int, expectedStores),
	}
}

// Verify interface compliance
var _ repositories.StoreDirectory = (*StoreRepository)(nil)

// LoadStores loads directory stores into the repository
func (r *StoreRepository) LoadStores(stores []entities.Store) error {
	for _, store := range stores {
		if err := r.SaveStore(store); err != nil {
			return err
		}
	}
	return nil
}

// SaveStore adds a store, rejecting duplicate business-unit codes
func (r *StoreRepository) SaveStore(store entities.Store) error {
	if _, exists := r.storesMap[store.ID]; exists {
		return fmt.Errorf("duplicate store id: %d", store.ID)
	}
	r.storesMap[store.ID] = len(r.stores)
	r.stores = append(r.stores, store)
	return nil
}

// GetStore returns the store with the given business-unit code
func (r *StoreRepository) GetStore(id entities.StoreID) (*entities.Store, error) {
	index, exists := r.storesMap[id]
	if !exists {
		return nil, fmt.Errorf("%w: %d", repositories.ErrStoreNotFound, id)
	}
	return &r.stores[index], nil
}

// StoresInCountry returns stores with the given country code, in directory order
func (r *StoreRepository) StoresInCountry(countryCode string) []entities.Store {
	var stores []entities.Store
	for _, store := range r.stores {
		if store.CountryCode == countryCode {
			stores = append(stores, store)
		}
	}
	return stores
}

// GetAllStores returns all stores
func (r *StoreRepository) GetAllStores() []entities.Store {
	stores := make([]entities.Store, len(r.stores))
	copy(stores, r.stores)
	return stores
}
