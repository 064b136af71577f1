package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

// UnknownStoreError reports a configured store id missing from the directory
type UnknownStoreError struct {
	ID entities.StoreID
}

func (e *UnknownStoreError) Error() string {
	return fmt.Sprintf("configured store %d is not in the store directory", e.ID)
}

// ResolveStores maps configured ids to directory stores, in configured order.
// In strict mode an unknown id is an error; otherwise the store keeps an
// empty name and reports under its bare id.
func ResolveStores(
	directory repositories.StoreDirectory,
	ids []int,
	strict bool,
	logger *zap.Logger,
) ([]entities.Store, error) {
	stores := make([]entities.Store, 0, len(ids))
	for _, raw := range ids {
		id := entities.StoreID(raw)

		store, err := directory.GetStore(id)
		if errors.Is(err, repositories.ErrStoreNotFound) {
			if strict {
				return nil, &UnknownStoreError{ID: id}
			}
			logger.Warn("configured store not in directory, using bare id",
				zap.Int("store_id", raw))
			stores = append(stores, entities.Store{ID: id})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve store %d: %w", raw, err)
		}

		stores = append(stores, *store)
	}
	return stores, nil
}
