package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// ProductKey identifies one product for batched offer matching.
type ProductKey struct {
	ProductID  string
	CategoryID *string
	TagIDs     []string
}

// OfferSource is the read side of offer resolution. One call covers a
// whole page of products with a single query; implementations must never
// fetch per product.
type OfferSource interface {
	// ActiveOffersFor returns every offer active at the given instant
	// whose scope could match any of the keys, ordered by ascending
	// offer id.
	ActiveOffersFor(ctx context.Context, keys []ProductKey, at time.Time) ([]*domain.Offer, error)
}

// OfferAdminDTO is an offer row for the admin list/detail views.
type OfferAdminDTO struct {
	Offer     *domain.Offer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OfferListResult is one page of offers plus the unpaged total.
type OfferListResult struct {
	Offers []*OfferAdminDTO
	Total  int64
}

// OfferRepository is the write side of offer administration.
// Repositories return mutations instead of applying them; usecases
// collect mutations into a commit plan and apply it atomically.
type OfferRepository interface {
	// InsertMut creates a mutation inserting a new offer.
	InsertMut(offer *domain.Offer, now time.Time) *spanner.Mutation

	// UpdateMut creates a mutation replacing an existing offer's fields.
	UpdateMut(offer *domain.Offer, now time.Time) *spanner.Mutation

	// DeleteMut creates a mutation removing an offer.
	DeleteMut(offerID string) *spanner.Mutation

	// GetByID returns an offer or domain.ErrOfferNotFound.
	GetByID(ctx context.Context, offerID string) (*OfferAdminDTO, error)

	// List returns a page of offers ordered by created_at descending.
	List(ctx context.Context, limit, offset int64) (*OfferListResult, error)
}
