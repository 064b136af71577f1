package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

// DefaultMaxPartDepth bounds how deeply multi-part products are expanded
const DefaultMaxPartDepth = 8

// PartCycleError reports a multi-part product that lists one of its own
// ancestors as a part
type PartCycleError struct {
	Chain []entities.ItemCode
}

func (e *PartCycleError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, code := range e.Chain {
		parts[i] = string(code)
	}
	return fmt.Sprintf("multi-part cycle: %s", strings.Join(parts, " -> "))
}

// PartDepthError reports a multi-part expansion deeper than the configured bound
type PartDepthError struct {
	ItemCode entities.ItemCode
	MaxDepth int
}

func (e *PartDepthError) Error() string {
	return fmt.Sprintf("multi-part expansion of %s exceeds depth %d", e.ItemCode, e.MaxDepth)
}

// ResolvedProduct is an article with its catalog data, per-store stock and,
// for multi-part articles, every part referenced by any store.
type ResolvedProduct struct {
	Info         *entities.ProductInfo
	Availability []entities.StoreAvailability
	Parts        map[entities.ItemCode]*ResolvedProduct
}

// ProgressObserver is notified the first time an article is resolved
type ProgressObserver interface {
	ProductResolved(product *entities.ProductInfo)
	AvailabilityResolved(itemCode entities.ItemCode, availability []entities.StoreAvailability)
}

// PartResolver expands articles into their parts. Each item code is looked up
// at most once per resolver; later references reuse the memoized result or
// the memoized lookup failure.
type PartResolver struct {
	catalog      repositories.ProductCatalog
	availability repositories.AvailabilityCatalog
	observer     ProgressObserver
	maxDepth     int
	resolved     map[entities.ItemCode]*ResolvedProduct
	failed       map[entities.ItemCode]error
}

// NewPartResolver creates a resolver. A nil observer is allowed.
func NewPartResolver(
	catalog repositories.ProductCatalog,
	availability repositories.AvailabilityCatalog,
	observer ProgressObserver,
	maxDepth int,
) *PartResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxPartDepth
	}
	return &PartResolver{
		catalog:      catalog,
		availability: availability,
		observer:     observer,
		maxDepth:     maxDepth,
		resolved:     make(map[entities.ItemCode]*ResolvedProduct),
		failed:       make(map[entities.ItemCode]error),
	}
}

// Resolve looks up itemCode and, recursively, the parts of multi-part articles
func (pr *PartResolver) Resolve(ctx context.Context, itemCode entities.ItemCode) (*ResolvedProduct, error) {
	return pr.resolve(ctx, itemCode, nil)
}

func (pr *PartResolver) resolve(
	ctx context.Context,
	itemCode entities.ItemCode,
	ancestors []entities.ItemCode,
) (*ResolvedProduct, error) {
	for _, ancestor := range ancestors {
		if ancestor == itemCode {
			chain := append(append([]entities.ItemCode{}, ancestors...), itemCode)
			return nil, &PartCycleError{Chain: chain}
		}
	}
	if len(ancestors) > pr.maxDepth {
		return nil, &PartDepthError{ItemCode: itemCode, MaxDepth: pr.maxDepth}
	}

	if product, ok := pr.resolved[itemCode]; ok {
		return product, nil
	}
	if err, ok := pr.failed[itemCode]; ok {
		return nil, err
	}

	product, err := pr.lookup(ctx, itemCode, ancestors)
	if err != nil {
		if isMemoizableFailure(err) {
			pr.failed[itemCode] = err
		}
		return nil, err
	}

	pr.resolved[itemCode] = product
	return product, nil
}

// isMemoizableFailure reports whether err will recur for itemCode on any
// later reference. Depth overruns depend on the path and cancellation on
// the caller, so neither is remembered.
func isMemoizableFailure(err error) bool {
	var depthErr *PartDepthError
	return isLookupFailure(err) && !errors.As(err, &depthErr)
}

func (pr *PartResolver) lookup(
	ctx context.Context,
	itemCode entities.ItemCode,
	ancestors []entities.ItemCode,
) (*ResolvedProduct, error) {
	info, err := pr.catalog.GetProductInfo(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if pr.observer != nil {
		pr.observer.ProductResolved(info)
	}

	availability, err := pr.availability.GetProductAvailability(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if pr.observer != nil {
		pr.observer.AvailabilityResolved(itemCode, availability)
	}

	product := &ResolvedProduct{
		Info:         info,
		Availability: availability,
		Parts:        make(map[entities.ItemCode]*ResolvedProduct),
	}

	path := make([]entities.ItemCode, len(ancestors), len(ancestors)+1)
	copy(path, ancestors)
	path = append(path, itemCode)
	for _, store := range availability {
		if !store.IsMultiPart {
			continue
		}
		for _, location := range store.PartLocations {
			if _, done := product.Parts[location.PartNumber]; done {
				continue
			}
			part, err := pr.resolve(ctx, location.PartNumber, path)
			if err != nil {
				return nil, fmt.Errorf("part %s of %s: %w", location.PartNumber, itemCode, err)
			}
			product.Parts[location.PartNumber] = part
		}
	}

	return product, nil
}
