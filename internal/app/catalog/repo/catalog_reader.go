package repo

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/models/m_product"
	"github.com/makanikart/catalog-service/internal/pkg/query"
	"github.com/makanikart/catalog-service/internal/pkg/searchtext"
)

// productColumns is the read-side projection. Tag ids and active
// variants come back as correlated ARRAY subqueries so one page of the
// catalog is a single query.
var productColumns = []string{
	"p.product_id",
	"p.name",
	"p.slug",
	"p.description",
	"p.sku",
	"p.cover_url",
	"p.category_id",
	"p.subcategory_id",
	"p.base_price_numerator",
	"p.base_price_denominator",
	"p.status",
	"p.created_at",
	"p.updated_at",
	"ARRAY(SELECT t.tag_id FROM product_tags t WHERE t.product_id = p.product_id ORDER BY t.tag_id) AS tag_ids",
	"ARRAY(SELECT AS STRUCT v.variant_id, v.label, v.price_numerator, v.price_denominator, " +
		"v.price_original_numerator, v.price_original_denominator, v.sort_order " +
		"FROM variants v WHERE v.product_id = p.product_id AND v.active ORDER BY v.sort_order, v.variant_id) AS variants",
}

// storedPrice divides the price columns so range filters and price sorts
// work on the actual decimal value.
const storedPrice = "SAFE_DIVIDE(p.base_price_numerator, p.base_price_denominator)"

// CatalogReadModel implements CatalogReader for Spanner.
type CatalogReadModel struct {
	client *spanner.Client
}

// NewCatalogReadModel creates a new CatalogReader implementation.
func NewCatalogReadModel(client *spanner.Client) contracts.CatalogReader {
	return &CatalogReadModel{client: client}
}

// CountProducts returns the number of active products matching the filter.
func (rm *CatalogReadModel) CountProducts(ctx context.Context, filter *contracts.CatalogFilter) (int64, error) {
	stmt := rm.filtered(filter).Count().Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse product count: %w", err)
	}
	return total, nil
}

// ListProducts returns one page of active products.
func (rm *CatalogReadModel) ListProducts(ctx context.Context, filter *contracts.CatalogFilter, sort contracts.CatalogSort, limit, offset int64) ([]*contracts.ProductRow, error) {
	b := rm.filtered(filter).Select(productColumns...)
	b = applySort(b, sort)
	stmt := b.Limit(limit).Offset(offset).Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*contracts.ProductRow, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		rows = append(rows, dataToRow(&data))
	}
	return rows, nil
}

// GetProductBySlug returns a single active product with its variants.
func (rm *CatalogReadModel) GetProductBySlug(ctx context.Context, slug string) (*contracts.ProductRow, error) {
	stmt := query.From(m_product.TableName + " p").
		Select(productColumns...).
		Where(query.Eq("p.status", "active")).
		Where(query.Eq("p.slug", slug)).
		Limit(1).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product %q: %w", slug, err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product %q: %w", slug, err)
	}
	return dataToRow(&data), nil
}

// searchColumns are the haystacks a free-text query runs against.
var searchColumns = []string{
	"LOWER(p.name)",
	"LOWER(p.slug)",
	"LOWER(COALESCE(p.description, ''))",
	"LOWER(COALESCE(p.sku, ''))",
}

// searchConditions matches the query as a lower-cased substring. Stored
// columns are only lower-cased in SQL, so an accented term must be sent
// as-is to match accented rows; the accent-folded form is tried as a
// second pattern so "Café" still finds rows stored as "cafe".
func searchConditions(search string) []query.Condition {
	needles := []string{strings.ToLower(strings.TrimSpace(search))}
	if folded := searchtext.Fold(search); folded != needles[0] {
		needles = append(needles, folded)
	}

	conds := make([]query.Condition, 0, len(needles)*len(searchColumns))
	for _, needle := range needles {
		pattern := "%" + searchtext.EscapeLike(needle) + "%"
		for _, col := range searchColumns {
			conds = append(conds, query.Like(col, pattern))
		}
	}
	return conds
}

// filtered builds the shared FROM/WHERE part of count and list, so the
// two stay consistent for pagination.
func (rm *CatalogReadModel) filtered(filter *contracts.CatalogFilter) *query.Builder {
	b := query.From(m_product.TableName + " p").
		Where(query.Eq("p.status", "active"))

	if filter == nil {
		return b
	}

	if filter.Search != "" {
		b = b.Where(query.Or(searchConditions(filter.Search)...))
	}

	if filter.CategoryID != nil {
		b = b.Where(query.Eq("p.category_id", *filter.CategoryID))
	}
	if filter.SubcategoryID != nil {
		b = b.Where(query.Eq("p.subcategory_id", *filter.SubcategoryID))
	}

	if len(filter.TagIDs) > 0 {
		if filter.MatchAll {
			// Intersection semantics: one membership check per tag.
			for _, tagID := range filter.TagIDs {
				b = b.Where(query.Exists(
					"SELECT 1 FROM product_tags t WHERE t.product_id = p.product_id AND t.tag_id = @%s",
					tagID,
				))
			}
		} else {
			b = b.Where(query.Exists(
				"SELECT 1 FROM product_tags t WHERE t.product_id = p.product_id AND t.tag_id IN UNNEST(@%s)",
				filter.TagIDs,
			))
		}
	}

	if filter.MinPrice != nil {
		b = b.Where(query.Gte(storedPrice, filter.MinPrice.Float64()))
	}
	if filter.MaxPrice != nil {
		b = b.Where(query.Lte(storedPrice, filter.MaxPrice.Float64()))
	}

	return b
}

// applySort maps a catalog sort onto ORDER BY terms. Every ordering ends
// with product_id so pages are stable under equal keys. Final-price
// sorts cannot be expressed against stored columns; they fall back to
// ascending product_id and the query layer re-sorts the fetched page.
func applySort(b *query.Builder, sort contracts.CatalogSort) *query.Builder {
	switch sort {
	case contracts.SortIDDesc:
		return b.OrderBy("p.product_id", query.Desc)
	case contracts.SortNameAsc:
		return b.OrderBy("LOWER(p.name)", query.Asc).OrderBy("p.product_id", query.Asc)
	case contracts.SortNameDesc:
		return b.OrderBy("LOWER(p.name)", query.Desc).OrderBy("p.product_id", query.Asc)
	case contracts.SortPriceAsc:
		return b.OrderBy(storedPrice, query.Asc).OrderBy("p.product_id", query.Asc)
	case contracts.SortPriceDesc:
		return b.OrderBy(storedPrice, query.Desc).OrderBy("p.product_id", query.Asc)
	default:
		return b.OrderBy("p.product_id", query.Asc)
	}
}

func dataToRow(data *m_product.Data) *contracts.ProductRow {
	row := &contracts.ProductRow{
		ID:          data.ProductID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description.StringVal,
		SKU:         data.SKU.StringVal,
		Cover:       data.CoverURL.StringVal,
		BasePrice:   data.BasePrice(),
		TagIDs:      data.TagIDs,
	}
	if data.CategoryID.Valid {
		v := data.CategoryID.StringVal
		row.CategoryID = &v
	}
	if data.SubcategoryID.Valid {
		v := data.SubcategoryID.StringVal
		row.SubcategoryID = &v
	}
	for _, variant := range data.Variants {
		row.Variants = append(row.Variants, &contracts.VariantRow{
			ID:            variant.VariantID,
			Label:         variant.Label,
			Price:         variant.Price(),
			PriceOriginal: variant.PriceOriginal(),
			SortOrder:     variant.SortOrder,
		})
	}
	return row
}
