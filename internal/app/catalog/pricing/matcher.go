package pricing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// Matcher assigns currently-active offers to products. The offer fetch
// is one batched query for the whole page; matching then happens in
// memory against hash maps keyed by scope, so cost stays proportional
// to products times matching offers.
type Matcher struct {
	source contracts.OfferSource
}

// NewMatcher creates a Matcher over the given offer source.
func NewMatcher(source contracts.OfferSource) *Matcher {
	return &Matcher{source: source}
}

// Match returns, per product id, the active offers whose scope matches
// that product, ordered by ascending offer id. A fetch failure aborts
// the whole batch; there is no partial result.
func (m *Matcher) Match(ctx context.Context, keys []contracts.ProductKey, at time.Time) (map[string][]*domain.Offer, error) {
	matched := make(map[string][]*domain.Offer, len(keys))
	if len(keys) == 0 {
		return matched, nil
	}

	offers, err := m.source.ActiveOffersFor(ctx, keys, at)
	if err != nil {
		return nil, fmt.Errorf("fetch active offers: %w", err)
	}

	byProduct := make(map[string][]*domain.Offer)
	byCategory := make(map[string][]*domain.Offer)
	byTag := make(map[string][]*domain.Offer)
	for _, offer := range offers {
		if !offer.ActiveAt(at) {
			continue
		}
		switch {
		case offer.ProductID() != nil:
			byProduct[*offer.ProductID()] = append(byProduct[*offer.ProductID()], offer)
		case offer.CategoryID() != nil:
			byCategory[*offer.CategoryID()] = append(byCategory[*offer.CategoryID()], offer)
		case offer.TagID() != nil:
			byTag[*offer.TagID()] = append(byTag[*offer.TagID()], offer)
		}
	}

	for _, key := range keys {
		var candidates []*domain.Offer
		candidates = append(candidates, byProduct[key.ProductID]...)
		if key.CategoryID != nil {
			candidates = append(candidates, byCategory[*key.CategoryID]...)
		}
		for _, tagID := range key.TagIDs {
			candidates = append(candidates, byTag[tagID]...)
		}
		if len(candidates) == 0 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].ID() < candidates[j].ID()
		})
		matched[key.ProductID] = candidates
	}
	return matched, nil
}
