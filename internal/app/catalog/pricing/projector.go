package pricing

import (
	"math/big"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// VariantPrice is a variant with its projected prices.
type VariantPrice struct {
	ID            string
	Label         string
	SortOrder     int64
	PriceOriginal *domain.Money
	PriceFinal    *domain.Money
}

// ProjectVariants extends a product-level resolution onto its variants
// and derives the product's displayed price from them.
//
// The product-level offer is carried onto variants as a ratio
// (final/original base price) multiplied into each variant's own manual
// price. A variant that already has a manual discount (price below
// priceOriginal) therefore stacks multiplicatively with a category- or
// tag-level offer; that composition is intentional and pinned by tests.
//
// The displayed product prices take the minimum final and the minimum
// original independently across variants, surfacing the cheapest entry
// point even when the two minima come from different variants.
func ProjectVariants(base Resolved, variants []*contracts.VariantRow) ([]VariantPrice, Resolved) {
	if len(variants) == 0 {
		return nil, base
	}

	ratio := offerRatio(base)

	prices := make([]VariantPrice, 0, len(variants))
	var minOriginal, minFinal *domain.Money
	for _, v := range variants {
		original := v.PriceOriginal
		if original == nil {
			original = v.Price
		}
		manualFinal := v.Price
		if manualFinal == nil {
			manualFinal = original
		}

		var final *domain.Money
		if manualFinal != nil {
			final = manualFinal.MulRat(ratio).Round2().ClampZero()
		}

		prices = append(prices, VariantPrice{
			ID:            v.ID,
			Label:         v.Label,
			SortOrder:     v.SortOrder,
			PriceOriginal: original,
			PriceFinal:    final,
		})
		minOriginal = domain.MinMoney(minOriginal, original)
		minFinal = domain.MinMoney(minFinal, final)
	}

	return prices, Resolved{
		PriceOriginal: minOriginal,
		PriceFinal:    minFinal,
		Offer:         base.Offer,
	}
}

// offerRatio is finalPrice/originalPrice at the product level, 1 when
// the base price is absent or zero.
func offerRatio(base Resolved) *big.Rat {
	if base.PriceOriginal == nil || base.PriceOriginal.IsZero() || base.PriceFinal == nil {
		return new(big.Rat).SetInt64(1)
	}
	ratio, err := base.PriceFinal.Div(base.PriceOriginal)
	if err != nil {
		return new(big.Rat).SetInt64(1)
	}
	return ratio.Rat()
}
