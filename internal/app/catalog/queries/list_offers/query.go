// Package list_offers serves the admin offer listing.
package list_offers

import (
	"context"
	"fmt"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Query lists offers for the admin UI.
type Query struct {
	repo contracts.OfferRepository
}

// NewQuery creates an offer listing query.
func NewQuery(repo contracts.OfferRepository) *Query {
	return &Query{repo: repo}
}

// Execute returns one page of offers, newest first, plus the total.
func (q *Query) Execute(ctx context.Context, limit, offset int64) (*contracts.OfferListResult, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	result, err := q.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return result, nil
}
