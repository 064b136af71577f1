package retailapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

type availabilityResponse struct {
	Availability *struct {
		LocalStores []localStore `xml:"localStore"`
	} `xml:"availability"`
}

type localStore struct {
	BuCode string     `xml:"buCode,attr"`
	Stock  stockEntry `xml:"stock"`
}

type stockEntry struct {
	AvailableStock         string          `xml:"availableStock"`
	InStockProbabilityCode string          `xml:"inStockProbabilityCode"`
	IsMultiProduct         string          `xml:"isMultiProduct"`
	RestockDate            string          `xml:"restockDate"`
	FindIts                []findItEntry   `xml:"findItList>findIt"`
	Forecasts              []forecastEntry `xml:"forecasts>forcast"`
}

type findItEntry struct {
	PartNumber     string `xml:"partNumber"`
	Quantity       string `xml:"quantity"`
	Type           string `xml:"type"`
	Box            string `xml:"box"`
	Shelf          string `xml:"shelf"`
	SpecialityShop string `xml:"specialityShop"`
}

type forecastEntry struct {
	AvailableStock         string `xml:"availableStock"`
	ValidDate              string `xml:"validDate"`
	InStockProbabilityCode string `xml:"inStockProbabilityCode"`
}

// AvailabilityClient reads per-store stock for the configured stores
type AvailabilityClient struct {
	client *Client
	stores []entities.Store
}

// NewAvailabilityClient creates a client reporting on stores, in that order
func NewAvailabilityClient(client *Client, stores []entities.Store) *AvailabilityClient {
	return &AvailabilityClient{
		client: client,
		stores: stores,
	}
}

// Verify interface compliance
var _ repositories.AvailabilityCatalog = (*AvailabilityClient)(nil)

// GetProductAvailability fetches stock for one article. Configured stores
// absent from the localStore list are left out of the result; a non-2xx
// status or a body without an availability element is an AvailabilityError.
func (c *AvailabilityClient) GetProductAvailability(
	ctx context.Context,
	itemCode entities.ItemCode,
) ([]entities.StoreAvailability, error) {
	var resp availabilityResponse
	status, err := c.client.getXML(ctx, c.client.availabilityURL(string(itemCode)), &resp)
	if err != nil {
		return nil, &AvailabilityError{ItemCode: itemCode, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &AvailabilityError{ItemCode: itemCode, Err: fmt.Errorf("unexpected status %d", status)}
	}
	if resp.Availability == nil {
		return nil, &AvailabilityError{ItemCode: itemCode, Err: errors.New("response has no availability element")}
	}
	localStores := resp.Availability.LocalStores

	byStore := make(map[entities.StoreID]*localStore, len(localStores))
	for i := range localStores {
		record := &localStores[i]
		id, err := strconv.Atoi(strings.TrimSpace(record.BuCode))
		if err != nil {
			return nil, &AvailabilityError{ItemCode: itemCode, Err: fmt.Errorf("invalid buCode %q", record.BuCode)}
		}
		if _, seen := byStore[entities.StoreID(id)]; !seen {
			byStore[entities.StoreID(id)] = record
		}
	}

	out := make([]entities.StoreAvailability, 0, len(c.stores))
	for _, store := range c.stores {
		record, ok := byStore[store.ID]
		if !ok {
			c.client.logger.Debug("store missing from availability response",
				zap.String("item", string(itemCode)),
				zap.Int("store_id", int(store.ID)))
			continue
		}

		availability, err := parseStock(itemCode, store, &record.Stock)
		if err != nil {
			return nil, &AvailabilityError{ItemCode: itemCode, Err: fmt.Errorf("store %d: %w", store.ID, err)}
		}
		out = append(out, *availability)
	}

	return out, nil
}

func parseStock(itemCode entities.ItemCode, store entities.Store, stock *stockEntry) (*entities.StoreAvailability, error) {
	available, err := parseQuantity(stock.AvailableStock)
	if err != nil {
		return nil, fmt.Errorf("invalid availableStock: %w", err)
	}

	confidence, err := entities.ParseConfidence(strings.TrimSpace(stock.InStockProbabilityCode))
	if err != nil {
		return nil, err
	}

	isMultiPart, err := parseBool(stock.IsMultiProduct)
	if err != nil {
		return nil, fmt.Errorf("invalid isMultiProduct: %w", err)
	}

	if len(stock.FindIts) == 0 {
		return nil, fmt.Errorf("no location in findItList")
	}
	findIts := stock.FindIts
	if !isMultiPart {
		findIts = findIts[:1]
	}

	locations := make([]entities.PartLocation, 0, len(findIts))
	for _, f := range findIts {
		location, err := parseLocation(f)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *location)
	}

	var restockDate *time.Time
	if available == 0 && strings.TrimSpace(stock.RestockDate) != "" {
		d, err := parseDate(stock.RestockDate)
		if err != nil {
			return nil, fmt.Errorf("invalid restockDate: %w", err)
		}
		restockDate = &d
	}

	forecast := make([]entities.ForecastPoint, 0, len(stock.Forecasts))
	for _, f := range stock.Forecasts {
		point, err := parseForecast(f)
		if err != nil {
			return nil, err
		}
		forecast = append(forecast, point)
	}

	return entities.NewStoreAvailability(
		store.ID,
		store.DisplayName(),
		itemCode,
		available,
		confidence,
		restockDate,
		isMultiPart,
		locations,
		forecast,
	)
}

func parseLocation(f findItEntry) (*entities.PartLocation, error) {
	quantity, err := parseQuantity(f.Quantity)
	if err != nil {
		return nil, fmt.Errorf("invalid findIt quantity: %w", err)
	}

	tag := entities.LocationTag{
		Type:           entities.LocationType(strings.TrimSpace(f.Type)),
		Box:            strings.TrimSpace(f.Box),
		Shelf:          strings.TrimSpace(f.Shelf),
		SpecialityShop: strings.TrimSpace(f.SpecialityShop),
	}
	return entities.NewPartLocation(entities.NormalizeItemCode(f.PartNumber), quantity, tag)
}

func parseForecast(f forecastEntry) (entities.ForecastPoint, error) {
	quantity, err := parseQuantity(f.AvailableStock)
	if err != nil {
		return entities.ForecastPoint{}, fmt.Errorf("invalid forecast availableStock: %w", err)
	}
	validDate, err := parseDate(f.ValidDate)
	if err != nil {
		return entities.ForecastPoint{}, fmt.Errorf("invalid forecast validDate: %w", err)
	}
	confidence, err := entities.ParseConfidence(strings.TrimSpace(f.InStockProbabilityCode))
	if err != nil {
		return entities.ForecastPoint{}, err
	}
	return entities.ForecastPoint{
		ValidDate:        validDate,
		ForecastQuantity: quantity,
		Confidence:       confidence,
	}, nil
}

func parseQuantity(s string) (entities.Quantity, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return entities.Quantity(n), nil
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("expected true or false, got %q", s)
	}
}

// dateLayouts are tried in order
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000-0700"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
