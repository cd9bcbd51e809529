package repo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/models/m_product"
	"github.com/makanikart/catalog-service/internal/models/m_variant"
)

func money(t *testing.T, v string) *domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(v)
	require.NoError(t, err)
	return m
}

func TestFiltered_ActiveOnlyByDefault(t *testing.T) {
	rm := &CatalogReadModel{}

	stmt := rm.filtered(nil).Count().Build()

	assert.Equal(t, "SELECT COUNT(*) FROM products p WHERE p.status = @p0", stmt.SQL)
	assert.Equal(t, "active", stmt.Params["p0"])
}

func TestFiltered_SearchSpansTextColumns(t *testing.T) {
	rm := &CatalogReadModel{}

	stmt := rm.filtered(&contracts.CatalogFilter{Search: "100% arabica"}).Count().Build()

	assert.Contains(t, stmt.SQL, "LOWER(p.name) LIKE @p1")
	assert.Contains(t, stmt.SQL, "LOWER(p.slug) LIKE @p2")
	assert.Contains(t, stmt.SQL, "LOWER(COALESCE(p.description, '')) LIKE @p3")
	assert.Contains(t, stmt.SQL, "LOWER(COALESCE(p.sku, '')) LIKE @p4")
	// The literal percent sign must arrive escaped, wrapped in wildcards.
	assert.Equal(t, `%100\% arabica%`, stmt.Params["p1"])
}

func TestFiltered_AccentedSearchTriesBothForms(t *testing.T) {
	rm := &CatalogReadModel{}

	stmt := rm.filtered(&contracts.CatalogFilter{Search: "Mañana"}).Count().Build()

	// Four columns times two needle forms: the verbatim lower-cased term
	// for accented rows, the folded term for ascii rows.
	for i := 1; i <= 8; i++ {
		assert.Contains(t, stmt.SQL, fmt.Sprintf("LIKE @p%d", i))
	}
	assert.Equal(t, "%mañana%", stmt.Params["p1"])
	assert.Equal(t, "%manana%", stmt.Params["p5"])
}

func TestFiltered_TagMatchAnyUsesOneExists(t *testing.T) {
	rm := &CatalogReadModel{}

	stmt := rm.filtered(&contracts.CatalogFilter{TagIDs: []string{"a", "b"}}).Count().Build()

	assert.Contains(t, stmt.SQL, "t.tag_id IN UNNEST(@p1)")
	assert.Equal(t, []string{"a", "b"}, stmt.Params["p1"])
}

func TestFiltered_TagMatchAllChecksEveryTag(t *testing.T) {
	rm := &CatalogReadModel{}

	stmt := rm.filtered(&contracts.CatalogFilter{TagIDs: []string{"a", "b"}, MatchAll: true}).Count().Build()

	assert.Contains(t, stmt.SQL, "t.tag_id = @p1")
	assert.Contains(t, stmt.SQL, "t.tag_id = @p2")
	assert.Equal(t, "a", stmt.Params["p1"])
	assert.Equal(t, "b", stmt.Params["p2"])
}

func TestFiltered_PriceRangeUsesStoredPrice(t *testing.T) {
	rm := &CatalogReadModel{}

	stmt := rm.filtered(&contracts.CatalogFilter{
		MinPrice: money(t, "10"),
		MaxPrice: money(t, "99.99"),
	}).Count().Build()

	assert.Contains(t, stmt.SQL, "SAFE_DIVIDE(p.base_price_numerator, p.base_price_denominator) >= @p1")
	assert.Contains(t, stmt.SQL, "SAFE_DIVIDE(p.base_price_numerator, p.base_price_denominator) <= @p2")
	assert.InDelta(t, 10.0, stmt.Params["p1"], 1e-9)
	assert.InDelta(t, 99.99, stmt.Params["p2"], 1e-9)
}

func TestApplySort(t *testing.T) {
	rm := &CatalogReadModel{}
	base := rm.filtered(nil)

	cases := []struct {
		sort contracts.CatalogSort
		want string
	}{
		{contracts.SortIDAsc, "ORDER BY p.product_id ASC"},
		{contracts.SortIDDesc, "ORDER BY p.product_id DESC"},
		{contracts.SortNameAsc, "ORDER BY LOWER(p.name) ASC, p.product_id ASC"},
		{contracts.SortPriceDesc, "ORDER BY SAFE_DIVIDE(p.base_price_numerator, p.base_price_denominator) DESC, p.product_id ASC"},
		// Final-price sorts are resolved in memory; storage falls back
		// to the stable id order.
		{contracts.SortFinalAsc, "ORDER BY p.product_id ASC"},
		{contracts.SortFinalDesc, "ORDER BY p.product_id ASC"},
	}
	for _, tc := range cases {
		stmt := applySort(base, tc.sort).Select("p.product_id").Build()
		assert.Contains(t, stmt.SQL, tc.want, string(tc.sort))
	}
}

func TestDataToRow(t *testing.T) {
	data := &m_product.Data{
		ProductID:            "p1",
		Name:                 "Arabica Beans",
		Slug:                 "arabica-beans",
		BasePriceNumerator:   nullInt64(995, true),
		BasePriceDenominator: nullInt64(10, true),
		TagIDs:               []string{"beans"},
		Variants: []*m_variant.Data{
			{
				VariantID:                "v1",
				Label:                    "500g",
				PriceOriginalNumerator:   nullInt64(90, true),
				PriceOriginalDenominator: nullInt64(1, true),
				SortOrder:                1,
			},
		},
	}

	row := dataToRow(data)

	assert.Equal(t, "99.50", row.BasePrice.String())
	assert.Nil(t, row.CategoryID)
	require.Len(t, row.Variants, 1)
	assert.Nil(t, row.Variants[0].Price)
	assert.Equal(t, "90.00", row.Variants[0].PriceOriginal.String())
}
