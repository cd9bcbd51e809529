// Package get_product serves the product detail page with fully
// projected variant prices.
package get_product

import (
	"context"
	"fmt"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/pricing"
)

// Detail is one product with resolved prices and variants.
type Detail struct {
	ID              string
	Name            string
	Slug            string
	Description     string
	SKU             string
	Cover           string
	CategoryID      *string
	SubcategoryID   *string
	TagIDs          []string
	PriceOriginal   *domain.Money
	PriceFinal      *domain.Money
	Offer           *domain.Offer
	HasDiscount     bool
	DiscountPercent int64
	Variants        []pricing.VariantPrice
}

// Query fetches product details.
type Query struct {
	reader   contracts.CatalogReader
	resolver *pricing.Resolver
}

// NewQuery creates a product detail query.
func NewQuery(reader contracts.CatalogReader, resolver *pricing.Resolver) *Query {
	return &Query{reader: reader, resolver: resolver}
}

// Execute returns the detail for one slug, or domain.ErrProductNotFound.
func (q *Query) Execute(ctx context.Context, slug string) (*Detail, error) {
	row, err := q.reader.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	priced, err := q.resolver.ResolveOne(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("resolve price: %w", err)
	}

	return &Detail{
		ID:              row.ID,
		Name:            row.Name,
		Slug:            row.Slug,
		Description:     row.Description,
		SKU:             row.SKU,
		Cover:           row.Cover,
		CategoryID:      row.CategoryID,
		SubcategoryID:   row.SubcategoryID,
		TagIDs:          row.TagIDs,
		PriceOriginal:   priced.PriceOriginal,
		PriceFinal:      priced.PriceFinal,
		Offer:           priced.Offer,
		HasDiscount:     priced.HasDiscount(),
		DiscountPercent: priced.DiscountPercent(),
		Variants:        priced.Variants,
	}, nil
}
