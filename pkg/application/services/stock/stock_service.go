package stock

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/application/dto"
	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
	"github.com/vsinha/stockcheck/pkg/domain/services"
)

// Options controls how the service aggregates and handles failures
type Options struct {
	Rollup       services.RollupPolicy
	SkipFailed   bool
	MaxPartDepth int
}

// Service folds a shopping list into one report per configured store
type Service struct {
	catalog      repositories.ProductCatalog
	availability repositories.AvailabilityCatalog
	stores       []entities.Store
	observer     ProgressObserver
	options      Options
	logger       *zap.Logger
}

// NewService creates a stock service. The catalogs are expected to be the
// run-scoped caches; the service itself does not memoize across runs.
func NewService(
	catalog repositories.ProductCatalog,
	availability repositories.AvailabilityCatalog,
	stores []entities.Store,
	observer ProgressObserver,
	options Options,
	logger *zap.Logger,
) *Service {
	return &Service{
		catalog:      catalog,
		availability: availability,
		stores:       stores,
		observer:     observer,
		options:      options,
		logger:       logger,
	}
}

// resolvedEntry pairs a shopping list entry with its resolved product
type resolvedEntry struct {
	entry   entities.ShoppingListEntry
	product *ResolvedProduct
}

// Check resolves every entry and builds the per-store reports. All lookups
// finish before any report is built, so a failed lookup never leaves a
// partial set of reports behind.
func (s *Service) Check(ctx context.Context, entries []*entities.ShoppingListEntry) (*dto.StockResult, error) {
	resolver := NewPartResolver(s.catalog, s.availability, s.observer, s.options.MaxPartDepth)
	result := &dto.StockResult{}

	resolved := make([]resolvedEntry, 0, len(entries))
	for _, entry := range entries {
		product, err := resolver.Resolve(ctx, entry.ItemCode)
		if err != nil {
			if !s.options.SkipFailed || !isLookupFailure(err) {
				return nil, err
			}
			s.logger.Warn("skipping shopping list entry",
				zap.String("item", string(entry.ItemCode)),
				zap.Error(err))
			result.Skipped = append(result.Skipped, dto.SkippedEntry{Entry: *entry, Err: err})
			continue
		}
		resolved = append(resolved, resolvedEntry{entry: *entry, product: product})
	}

	for _, store := range s.stores {
		result.Reports = append(result.Reports, s.buildReport(store, resolved))
	}

	return result, nil
}

// buildReport aggregates all entries at one store
func (s *Service) buildReport(store entities.Store, entries []resolvedEntry) entities.StoreReport {
	report := entities.StoreReport{
		Store:                     store,
		TotalPrice:                decimal.Zero,
		MeetsQuantityRequirements: true,
	}
	rollup := services.NewConfidenceRollup(s.options.Rollup)

	for _, e := range entries {
		// parts are priced into their parent, so only top-level entries count
		report.TotalPrice = report.TotalPrice.Add(e.product.Info.LinePrice(e.entry.QuantityNeeded))

		availability, ok := entities.FindStore(e.product.Availability, store.ID)
		if !ok {
			s.logger.Warn("item not stocked at store",
				zap.String("item", string(e.entry.ItemCode)),
				zap.Int("store_id", int(store.ID)))
			continue
		}

		rollup.Observe(availability.Confidence)
		s.appendLines(&report, e.product, availability, e.entry.QuantityNeeded, e.entry.Notes)
	}

	report.OverallConfidence = rollup.Result()
	for _, line := range report.LineItems {
		report.TotalItemCount += line.QuantityNeeded
	}

	return report
}

// appendLines emits the line for one article and, for multi-part articles,
// one line per part directly after it
func (s *Service) appendLines(
	report *entities.StoreReport,
	product *ResolvedProduct,
	availability *entities.StoreAvailability,
	quantity entities.Quantity,
	notes string,
) {
	info := product.Info

	if !availability.IsMultiPart {
		location := availability.Location()
		line := newLineItem(info, location.LocationLabel, quantity*location.QuantityPerUnit, availability, notes)
		if line.QuantityNeeded > availability.AvailableQuantity {
			line.MarkInsufficient()
			report.MeetsQuantityRequirements = false
		}
		report.LineItems = append(report.LineItems, line)
		return
	}

	summary := newLineItem(info, entities.MultiPartLocationLabel, quantity, availability, notes)
	if quantity > availability.AvailableQuantity {
		summary.MarkInsufficient()
		report.MeetsQuantityRequirements = false
	}
	report.LineItems = append(report.LineItems, summary)

	s.appendParts(report, product, availability, quantity)
}

// appendParts emits one line per part of a multi-part article, recursing into
// parts that are themselves multi-part at this store
func (s *Service) appendParts(
	report *entities.StoreReport,
	parent *ResolvedProduct,
	parentAvailability *entities.StoreAvailability,
	quantity entities.Quantity,
) {
	partOf := "Part of " + string(parent.Info.ItemCode)

	for _, location := range parentAvailability.PartLocations {
		part := parent.Parts[location.PartNumber]
		needed := quantity * location.QuantityPerUnit

		partAvailability, ok := entities.FindStore(part.Availability, report.Store.ID)
		if !ok {
			line := entities.LineItem{
				PartNumber:        part.Info.ItemCode,
				Description:       part.Info.Description,
				LocationLabel:     location.LocationLabel,
				QuantityNeeded:    needed,
				QuantityAvailable: 0,
				Confidence:        entities.ConfidenceLow,
				Color:             part.Info.Color,
				Size:              part.Info.Size,
				UnitPrice:         part.Info.UnitPrice,
				Notes:             partOf,
			}
			line.MarkInsufficient()
			report.MeetsQuantityRequirements = false
			report.LineItems = append(report.LineItems, line)
			continue
		}

		line := newLineItem(part.Info, location.LocationLabel, needed, partAvailability, partOf)
		if needed > partAvailability.AvailableQuantity {
			line.MarkInsufficient()
			report.MeetsQuantityRequirements = false
		}
		report.LineItems = append(report.LineItems, line)

		if partAvailability.IsMultiPart {
			s.appendParts(report, part, partAvailability, needed)
		}
	}
}

func newLineItem(
	info *entities.ProductInfo,
	locationLabel string,
	needed entities.Quantity,
	availability *entities.StoreAvailability,
	notes string,
) entities.LineItem {
	return entities.LineItem{
		PartNumber:        info.ItemCode,
		Description:       info.Description,
		LocationLabel:     locationLabel,
		QuantityNeeded:    needed,
		QuantityAvailable: availability.AvailableQuantity,
		Confidence:        availability.Confidence,
		Color:             info.Color,
		Size:              info.Size,
		UnitPrice:         info.UnitPrice,
		Notes:             notes,
	}
}

// isLookupFailure reports whether err came from an item lookup rather than
// from cancellation
func isLookupFailure(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
