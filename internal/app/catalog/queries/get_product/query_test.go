package get_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/pricing"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
)

type stubReader struct {
	row *contracts.ProductRow
}

func (s *stubReader) CountProducts(ctx context.Context, filter *contracts.CatalogFilter) (int64, error) {
	return 0, nil
}

func (s *stubReader) ListProducts(ctx context.Context, filter *contracts.CatalogFilter, sort contracts.CatalogSort, limit, offset int64) ([]*contracts.ProductRow, error) {
	return nil, nil
}

func (s *stubReader) GetProductBySlug(ctx context.Context, slug string) (*contracts.ProductRow, error) {
	if s.row != nil && s.row.Slug == slug {
		return s.row, nil
	}
	return nil, domain.ErrProductNotFound
}

type stubOffers struct {
	offers []*domain.Offer
}

func (s *stubOffers) ActiveOffersFor(ctx context.Context, keys []contracts.ProductKey, at time.Time) ([]*domain.Offer, error) {
	return s.offers, nil
}

func money(t *testing.T, v string) *domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(v)
	require.NoError(t, err)
	return m
}

func TestExecute_DetailWithVariants(t *testing.T) {
	cat := "cat-1"
	offer, err := domain.NewOffer(domain.OfferParams{
		ID:         "o1",
		Title:      "Category sale",
		Type:       domain.DiscountPercent,
		Value:      money(t, "20").Rat(),
		CategoryID: &cat,
	})
	require.NoError(t, err)

	reader := &stubReader{row: &contracts.ProductRow{
		ID:         "p1",
		Name:       "Arabica Beans",
		Slug:       "arabica-beans",
		SKU:        "AB-01",
		CategoryID: &cat,
		BasePrice:  money(t, "100"),
		Variants: []*contracts.VariantRow{
			{ID: "v1", Label: "500g", Price: money(t, "70"), PriceOriginal: money(t, "90"), SortOrder: 1},
		},
	}}
	resolver := pricing.NewResolver(&stubOffers{offers: []*domain.Offer{offer}}, clock.NewFixed(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	q := NewQuery(reader, resolver)

	detail, err := q.Execute(context.Background(), "arabica-beans")
	require.NoError(t, err)

	assert.Equal(t, "p1", detail.ID)
	require.Len(t, detail.Variants, 1)
	assert.Equal(t, "56.00", detail.Variants[0].PriceFinal.String())
	assert.Equal(t, "56.00", detail.PriceFinal.String())
	assert.Equal(t, "o1", detail.Offer.ID())
	assert.True(t, detail.HasDiscount)
}

func TestExecute_UnknownSlug(t *testing.T) {
	resolver := pricing.NewResolver(&stubOffers{}, clock.NewSystem())
	q := NewQuery(&stubReader{}, resolver)

	_, err := q.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
