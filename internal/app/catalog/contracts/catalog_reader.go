package contracts

import (
	"context"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// CatalogSort enumerates the supported catalog orderings. Final-price
// sorts cannot be pushed to the database; the reader falls back to a
// stable product_id order and the query layer re-sorts the fetched page.
type CatalogSort string

const (
	SortIDAsc     CatalogSort = "id"
	SortIDDesc    CatalogSort = "-id"
	SortNameAsc   CatalogSort = "name"
	SortNameDesc  CatalogSort = "-name"
	SortPriceAsc  CatalogSort = "price"
	SortPriceDesc CatalogSort = "-price"
	SortFinalAsc  CatalogSort = "final"
	SortFinalDesc CatalogSort = "-final"
)

// ByFinalPrice reports whether the sort depends on resolved prices.
func (s CatalogSort) ByFinalPrice() bool {
	return s == SortFinalAsc || s == SortFinalDesc
}

// CatalogFilter holds the database-expressible filters of a catalog
// query. Price-dependent filters (onSale, final-price range) are applied
// after offer resolution and deliberately have no place here.
type CatalogFilter struct {
	// Search is matched case-insensitively as a substring against name,
	// slug, description and sku. Callers pass the term verbatim; the
	// reader owns lower-casing and the accent-folded fallback.
	Search        string
	CategoryID    *string
	SubcategoryID *string
	// TagIDs filters by tag membership; MatchAll switches between
	// union (any tag) and intersection (every tag) semantics.
	TagIDs   []string
	MatchAll bool
	// MinPrice/MaxPrice bound the stored base price, pre-discount.
	MinPrice *domain.Money
	MaxPrice *domain.Money
}

// VariantRow is a variant as read from storage. Only active variants are
// returned, ordered by sort_order.
type VariantRow struct {
	ID            string
	Label         string
	Price         *domain.Money
	PriceOriginal *domain.Money
	SortOrder     int64
}

// ProductRow is a catalog product as read from storage, with tag ids and
// active variants fetched in the same round trip.
type ProductRow struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	SKU           string
	Cover         string
	CategoryID    *string
	SubcategoryID *string
	BasePrice     *domain.Money
	TagIDs        []string
	Variants      []*VariantRow
}

// CatalogReader is the read side of the product catalog. Implementations
// must keep Count and List consistent with the same filter so the two
// can be paired into a paginated response.
type CatalogReader interface {
	// CountProducts returns the number of active products matching the
	// database-expressible filters.
	CountProducts(ctx context.Context, filter *CatalogFilter) (int64, error)

	// ListProducts returns one page of active products under the given
	// sort. Final-price sorts fall back to ascending product_id.
	ListProducts(ctx context.Context, filter *CatalogFilter, sort CatalogSort, limit, offset int64) ([]*ProductRow, error)

	// GetProductBySlug returns a single active product with variants,
	// or domain.ErrProductNotFound.
	GetProductBySlug(ctx context.Context, slug string) (*ProductRow, error)
}
