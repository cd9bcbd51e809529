package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

func TestProjectVariants_ComposesOfferRatioWithManualDiscount(t *testing.T) {
	// Base price 100 with a category-wide 20% offer: ratio 0.8.
	// Variant has its own manual discount: priceOriginal 90, price 70.
	// The projected final is 70 * 0.8 = 56, original stays 90.
	offer := makeOffer(t, offerSpec{id: "offer-1", kind: domain.DiscountPercent, value: "20", categoryID: strptr("cat-1")})
	base := SelectBest(money(t, "100"), []*domain.Offer{offer})
	require.Equal(t, "80.00", base.PriceFinal.String())

	variants, display := ProjectVariants(base, []*contracts.VariantRow{
		{ID: "v1", Label: "500g", Price: money(t, "70"), PriceOriginal: money(t, "90")},
	})

	require.Len(t, variants, 1)
	assert.Equal(t, "56.00", variants[0].PriceFinal.String())
	assert.Equal(t, "90.00", variants[0].PriceOriginal.Round2().String())

	assert.Equal(t, "56.00", display.PriceFinal.String())
	assert.Equal(t, "90.00", display.PriceOriginal.Round2().String())
	assert.Equal(t, "offer-1", display.Offer.ID())
}

func TestProjectVariants_MinimaAreIndependent(t *testing.T) {
	// v1 has the lowest original, v2 the lowest final; the displayed
	// pair mixes the two on purpose.
	base := Resolved{PriceOriginal: money(t, "100"), PriceFinal: money(t, "100")}

	_, display := ProjectVariants(base, []*contracts.VariantRow{
		{ID: "v1", Label: "small", Price: money(t, "40"), PriceOriginal: money(t, "40")},
		{ID: "v2", Label: "promo", Price: money(t, "35"), PriceOriginal: money(t, "80")},
	})

	assert.Equal(t, "35.00", display.PriceFinal.String())
	assert.Equal(t, "40.00", display.PriceOriginal.Round2().String())
}

func TestProjectVariants_FallbackChain(t *testing.T) {
	base := Resolved{PriceOriginal: money(t, "100"), PriceFinal: money(t, "100")}

	t.Run("original falls back to plain price", func(t *testing.T) {
		variants, _ := ProjectVariants(base, []*contracts.VariantRow{
			{ID: "v1", Label: "x", Price: money(t, "30")},
		})
		assert.Equal(t, "30.00", variants[0].PriceOriginal.Round2().String())
		assert.Equal(t, "30.00", variants[0].PriceFinal.String())
	})

	t.Run("manual final falls back to original", func(t *testing.T) {
		variants, _ := ProjectVariants(base, []*contracts.VariantRow{
			{ID: "v1", Label: "x", PriceOriginal: money(t, "45")},
		})
		assert.Equal(t, "45.00", variants[0].PriceFinal.String())
	})

	t.Run("variant without any price stays unpriced", func(t *testing.T) {
		variants, display := ProjectVariants(base, []*contracts.VariantRow{
			{ID: "v1", Label: "x"},
		})
		assert.Nil(t, variants[0].PriceOriginal)
		assert.Nil(t, variants[0].PriceFinal)
		assert.Nil(t, display.PriceFinal)
	})
}

func TestProjectVariants_RatioOneWhenBaseUnpriced(t *testing.T) {
	t.Run("nil base price", func(t *testing.T) {
		base := Resolved{}
		variants, _ := ProjectVariants(base, []*contracts.VariantRow{
			{ID: "v1", Label: "x", Price: money(t, "20")},
		})
		assert.Equal(t, "20.00", variants[0].PriceFinal.String())
	})

	t.Run("zero base price", func(t *testing.T) {
		base := Resolved{PriceOriginal: money(t, "0"), PriceFinal: money(t, "0")}
		variants, _ := ProjectVariants(base, []*contracts.VariantRow{
			{ID: "v1", Label: "x", Price: money(t, "20")},
		})
		assert.Equal(t, "20.00", variants[0].PriceFinal.String())
	})
}

func TestProjectVariants_NoVariantsPassesBaseThrough(t *testing.T) {
	base := Resolved{PriceOriginal: money(t, "100"), PriceFinal: money(t, "80")}

	variants, display := ProjectVariants(base, nil)

	assert.Nil(t, variants)
	assert.Equal(t, "80.00", display.PriceFinal.String())
}
