package commands

import (
	"fmt"
	"io"

	"github.com/vsinha/stockcheck/pkg/infrastructure/config"
	"github.com/vsinha/stockcheck/pkg/infrastructure/repositories/memory"
)

// DefaultCountry is used when no country code is given
const DefaultCountry = "us"

// StoresCommand lists the directory stores of one country
type StoresCommand struct {
	storesFile string
	country    string
	out        io.Writer
}

// NewStoresCommand creates a store listing command
func NewStoresCommand(storesFile, country string, out io.Writer) *StoresCommand {
	if country == "" {
		country = DefaultCountry
	}
	return &StoresCommand{
		storesFile: storesFile,
		country:    country,
		out:        out,
	}
}

// Execute prints "<name>: <id>" for every store in the country
func (c *StoresCommand) Execute() (int, error) {
	fmt.Fprintln(c.out, "Getting stores in:", c.country)

	directory, err := config.LoadStoreDirectory(c.storesFile)
	if err != nil {
		return 0, err
	}

	repo := memory.NewStoreRepository(len(directory))
	if err := repo.LoadStores(directory); err != nil {
		return 0, fmt.Errorf("failed to load store directory: %w", err)
	}

	stores := repo.StoresInCountry(c.country)
	for _, store := range stores {
		fmt.Fprintf(c.out, "%s: %d\n", store.Name, store.ID)
	}

	fmt.Fprintln(c.out, "Found", len(stores), "stores")
	if len(stores) == 0 {
		fmt.Fprintln(c.out, "Check your country code by looking at the retailer URL of your target country")
		fmt.Fprintln(c.out, "For example, in the U.S. the URL is https://www.ikea.com/us/en/ and the country code is 'us'")
	}

	return len(stores), nil
}
