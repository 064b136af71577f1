package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// StoreDirectoryEntry is one record of the store directory file
type StoreDirectoryEntry struct {
	Name        string `json:"name"`
	BuCode      string `json:"buCode"`
	CountryCode string `json:"countryCode"`
}

// LoadStoreDirectory reads the JSON store directory into stores. Entries whose
// buCode is not numeric cannot be matched against configured ids and are
// rejected.
func LoadStoreDirectory(path string) ([]entities.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to read store directory: %w", err)}
	}

	var records []StoreDirectoryEntry
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to parse store directory: %w", err)}
	}

	stores := make([]entities.Store, 0, len(records))
	for i, record := range records {
		id, err := strconv.Atoi(record.BuCode)
		if err != nil {
			return nil, &ConfigError{
				Path: path,
				Err:  fmt.Errorf("entry %d (%s): invalid buCode %q", i, record.Name, record.BuCode),
			}
		}
		stores = append(stores, entities.Store{
			ID:          entities.StoreID(id),
			Name:        record.Name,
			CountryCode: record.CountryCode,
		})
	}

	return stores, nil
}
