package pricing

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

func money(t *testing.T, s string) *domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, ok := new(big.Rat).SetString(s)
	require.True(t, ok, "invalid rational %q", s)
	return r
}

type offerSpec struct {
	id         string
	kind       domain.DiscountType
	value      string
	productID  *string
	categoryID *string
	tagID      *string
	startAt    *time.Time
	endAt      *time.Time
}

func makeOffer(t *testing.T, spec offerSpec) *domain.Offer {
	t.Helper()
	o, err := domain.NewOffer(domain.OfferParams{
		ID:         spec.id,
		Title:      "offer " + spec.id,
		Type:       spec.kind,
		Value:      rat(t, spec.value),
		ProductID:  spec.productID,
		CategoryID: spec.categoryID,
		TagID:      spec.tagID,
		StartAt:    spec.startAt,
		EndAt:      spec.endAt,
	})
	require.NoError(t, err)
	return o
}

func strptr(s string) *string { return &s }
