// Package pricing resolves promotional offers into final prices: it
// matches a page of products against the active offer set in one batch,
// picks the best offer per product, and projects the resulting ratio
// onto variants.
package pricing

import (
	"math/big"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

var one = big.NewRat(1, 1)

// Apply applies a single discount to a single price and returns the
// final price rounded to two decimals, clamped at zero. A nil price
// propagates nil. Apply never fails.
func Apply(kind domain.DiscountType, price *domain.Money, value *big.Rat) *domain.Money {
	if price == nil {
		return nil
	}

	switch kind {
	case domain.DiscountPercent:
		factor := new(big.Rat).Sub(one, new(big.Rat).Quo(value, big.NewRat(100, 1)))
		return price.MulRat(factor).Round2().ClampZero()
	case domain.DiscountAmount:
		return price.Sub(domain.MoneyFromRat(value)).Round2().ClampZero()
	}
	return price.Copy()
}
