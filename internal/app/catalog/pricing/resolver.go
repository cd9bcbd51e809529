package pricing

import (
	"context"
	"fmt"
	"log"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
)

// ProductPricing is the complete pricing outcome for one product.
type ProductPricing struct {
	Resolved
	Variants []VariantPrice
}

// Resolver batch-resolves prices for a page of products: one offer
// fetch for the whole page, then per-product selection and variant
// projection in memory.
type Resolver struct {
	matcher *Matcher
	clock   clock.Clock
}

// NewResolver creates a Resolver.
func NewResolver(source contracts.OfferSource, clk clock.Clock) *Resolver {
	return &Resolver{
		matcher: NewMatcher(source),
		clock:   clk,
	}
}

// ResolvePage prices every product of the page. An offer-fetch failure
// fails the whole page; a resolution failure for a single product is
// downgraded to undiscounted pricing for that product, logged, and the
// page still succeeds.
func (r *Resolver) ResolvePage(ctx context.Context, rows []*contracts.ProductRow) (map[string]*ProductPricing, error) {
	keys := make([]contracts.ProductKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, contracts.ProductKey{
			ProductID:  row.ID,
			CategoryID: row.CategoryID,
			TagIDs:     row.TagIDs,
		})
	}

	matched, err := r.matcher.Match(ctx, keys, r.clock.Now())
	if err != nil {
		return nil, err
	}

	out := make(map[string]*ProductPricing, len(rows))
	for _, row := range rows {
		pp, err := resolveOne(row, matched[row.ID])
		if err != nil {
			log.Printf("pricing: product %s: %v; serving undiscounted price", row.ID, err)
			pp = &ProductPricing{Resolved: Resolved{
				PriceOriginal: row.BasePrice,
				PriceFinal:    row.BasePrice,
			}}
		}
		out[row.ID] = pp
	}
	return out, nil
}

// ResolveOne prices a single product (detail pages).
func (r *Resolver) ResolveOne(ctx context.Context, row *contracts.ProductRow) (*ProductPricing, error) {
	page, err := r.ResolvePage(ctx, []*contracts.ProductRow{row})
	if err != nil {
		return nil, err
	}
	return page[row.ID], nil
}

func resolveOne(row *contracts.ProductRow, candidates []*domain.Offer) (pp *ProductPricing, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pp = nil
			err = fmt.Errorf("panic during price resolution: %v", rec)
		}
	}()

	base := SelectBest(row.BasePrice, candidates)
	variants, display := ProjectVariants(base, row.Variants)
	return &ProductPricing{Resolved: display, Variants: variants}, nil
}
