package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/models/m_offer"
	"github.com/makanikart/catalog-service/internal/pkg/query"
)

var offerColumns = []string{
	m_offer.OfferID,
	m_offer.Title,
	m_offer.DiscountType,
	m_offer.DiscountValue,
	m_offer.ProductID,
	m_offer.CategoryID,
	m_offer.TagID,
	m_offer.StartAt,
	m_offer.EndAt,
	m_offer.CreatedAt,
	m_offer.UpdatedAt,
}

// OfferRepo implements OfferRepository and OfferSource for Spanner.
type OfferRepo struct {
	client *spanner.Client
	model  *m_offer.Model
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(client *spanner.Client) *OfferRepo {
	return &OfferRepo{
		client: client,
		model:  m_offer.NewModel(),
	}
}

// ActiveOffersFor returns every offer active at the given instant whose
// scope could match any of the keys. The whole batch is one query; the
// matcher assigns offers to products in memory.
func (r *OfferRepo) ActiveOffersFor(ctx context.Context, keys []contracts.ProductKey, at time.Time) ([]*domain.Offer, error) {
	productIDs, categoryIDs, tagIDs := scopeValues(keys)
	if len(productIDs) == 0 && len(categoryIDs) == 0 && len(tagIDs) == 0 {
		return nil, nil
	}

	iter := r.client.Single().Query(ctx, activeOffersStmt(productIDs, categoryIDs, tagIDs, at))
	defer iter.Stop()

	var offers []*domain.Offer
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate offers: %w", err)
		}

		var data m_offer.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse offer: %w", err)
		}
		offer, err := data.ToOffer()
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// activeOffersStmt selects every offer whose scope is in one of the
// value sets and whose window contains the instant. An unset bound
// leaves that side open. Ascending id order makes the lowest-id
// tie-break deterministic downstream.
func activeOffersStmt(productIDs, categoryIDs, tagIDs []string, at time.Time) spanner.Statement {
	return query.From(m_offer.TableName).
		Select(offerColumns...).
		Where(query.Or(
			query.InUnnest(m_offer.ProductID, productIDs),
			query.InUnnest(m_offer.CategoryID, categoryIDs),
			query.InUnnest(m_offer.TagID, tagIDs),
		)).
		Where(query.Or(query.IsNull(m_offer.StartAt), query.Lte(m_offer.StartAt, at))).
		Where(query.Or(query.IsNull(m_offer.EndAt), query.Gte(m_offer.EndAt, at))).
		OrderBy(m_offer.OfferID, query.Asc).
		Build()
}

// InsertMut creates a mutation inserting a new offer.
func (r *OfferRepo) InsertMut(offer *domain.Offer, now time.Time) *spanner.Mutation {
	data := m_offer.FromOffer(offer)
	data.CreatedAt = now
	data.UpdatedAt = now
	return r.model.InsertMut(data)
}

// UpdateMut creates a mutation replacing an existing offer's fields.
func (r *OfferRepo) UpdateMut(offer *domain.Offer, now time.Time) *spanner.Mutation {
	data := m_offer.FromOffer(offer)
	data.UpdatedAt = now
	return r.model.UpdateMut(data)
}

// DeleteMut creates a mutation removing an offer.
func (r *OfferRepo) DeleteMut(offerID string) *spanner.Mutation {
	return r.model.DeleteMut(offerID)
}

// GetByID retrieves an offer by id.
func (r *OfferRepo) GetByID(ctx context.Context, offerID string) (*contracts.OfferAdminDTO, error) {
	row, err := r.client.Single().ReadRow(ctx, m_offer.TableName, spanner.Key{offerID}, offerColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to read offer: %w", err)
	}

	var data m_offer.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse offer: %w", err)
	}
	return dataToDTO(&data)
}

// List returns a page of offers ordered by creation time, newest first.
func (r *OfferRepo) List(ctx context.Context, limit, offset int64) (*contracts.OfferListResult, error) {
	base := query.From(m_offer.TableName)

	total, err := r.countOffers(ctx, base)
	if err != nil {
		return nil, err
	}

	stmt := base.
		Select(offerColumns...).
		OrderBy(m_offer.CreatedAt, query.Desc).
		OrderBy(m_offer.OfferID, query.Asc).
		Limit(limit).
		Offset(offset).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	result := &contracts.OfferListResult{Total: total}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate offers: %w", err)
		}

		var data m_offer.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse offer: %w", err)
		}
		dto, err := dataToDTO(&data)
		if err != nil {
			return nil, err
		}
		result.Offers = append(result.Offers, dto)
	}
	return result, nil
}

func (r *OfferRepo) countOffers(ctx context.Context, base *query.Builder) (int64, error) {
	iter := r.client.Single().Query(ctx, base.Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count offers: %w", err)
	}

	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse offer count: %w", err)
	}
	return total, nil
}

func dataToDTO(data *m_offer.Data) (*contracts.OfferAdminDTO, error) {
	offer, err := data.ToOffer()
	if err != nil {
		return nil, err
	}
	return &contracts.OfferAdminDTO{
		Offer:     offer,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// scopeValues collects the distinct scope values of a key batch so the
// offer query binds three array parameters regardless of batch size.
func scopeValues(keys []contracts.ProductKey) (productIDs, categoryIDs, tagIDs []string) {
	seenProduct := make(map[string]struct{}, len(keys))
	seenCategory := make(map[string]struct{})
	seenTag := make(map[string]struct{})

	productIDs = make([]string, 0, len(keys))
	categoryIDs = make([]string, 0)
	tagIDs = make([]string, 0)

	for _, key := range keys {
		if _, ok := seenProduct[key.ProductID]; !ok {
			seenProduct[key.ProductID] = struct{}{}
			productIDs = append(productIDs, key.ProductID)
		}
		if key.CategoryID != nil {
			if _, ok := seenCategory[*key.CategoryID]; !ok {
				seenCategory[*key.CategoryID] = struct{}{}
				categoryIDs = append(categoryIDs, *key.CategoryID)
			}
		}
		for _, tagID := range key.TagIDs {
			if _, ok := seenTag[tagID]; !ok {
				seenTag[tagID] = struct{}{}
				tagIDs = append(tagIDs, tagID)
			}
		}
	}
	return productIDs, categoryIDs, tagIDs
}
