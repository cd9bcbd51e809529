package pricing

import (
	"math"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// Resolved is the outcome of offer resolution for one product. It is
// derived per request and never persisted.
type Resolved struct {
	PriceOriginal *domain.Money
	PriceFinal    *domain.Money
	Offer         *domain.Offer
}

// HasDiscount reports whether an offer actually lowered the price.
func (r Resolved) HasDiscount() bool {
	if r.Offer == nil || r.PriceOriginal == nil || r.PriceFinal == nil {
		return false
	}
	return r.PriceFinal.LessThan(r.PriceOriginal)
}

// DiscountPercent returns the rounded percentage saved, 0 without a
// discount.
func (r Resolved) DiscountPercent() int64 {
	if !r.HasDiscount() || r.PriceOriginal.IsZero() {
		return 0
	}
	ratio, err := r.PriceFinal.Div(r.PriceOriginal)
	if err != nil {
		return 0
	}
	return int64(math.Round((1 - ratio.Float64()) * 100))
}

// SelectBest picks the offer yielding the lowest final price for the
// given base price. Candidates must come ordered by ascending offer id;
// the strict less-than comparison then makes the lowest-id offer win
// ties deterministically. With no candidates, or a nil base price, the
// price passes through undiscounted.
func SelectBest(basePrice *domain.Money, candidates []*domain.Offer) Resolved {
	best := Resolved{
		PriceOriginal: basePrice,
		PriceFinal:    basePrice,
	}
	if basePrice == nil {
		return best
	}

	for _, offer := range candidates {
		final := Apply(offer.Type(), basePrice, offer.Value())
		if final.LessThan(best.PriceFinal) {
			best.PriceFinal = final
			best.Offer = offer
		}
	}
	return best
}
