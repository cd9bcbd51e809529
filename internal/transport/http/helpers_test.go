package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/pricing"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/list_catalog"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/list_offers"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/create_offer"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/delete_offer"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/update_offer"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
	"github.com/makanikart/catalog-service/internal/pkg/committer"
)

const testAdminToken = "test-token"

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeReader struct {
	rows    []*contracts.ProductRow
	listErr error
}

func (f *fakeReader) CountProducts(ctx context.Context, filter *contracts.CatalogFilter) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeReader) ListProducts(ctx context.Context, filter *contracts.CatalogFilter, sort contracts.CatalogSort, limit, offset int64) ([]*contracts.ProductRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= int64(len(f.rows)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(f.rows)) {
		end = int64(len(f.rows))
	}
	return f.rows[offset:end], nil
}

func (f *fakeReader) GetProductBySlug(ctx context.Context, slug string) (*contracts.ProductRow, error) {
	for _, row := range f.rows {
		if row.Slug == slug {
			return row, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// fakeOfferStore doubles as OfferSource and OfferRepository.
type fakeOfferStore struct {
	active []*domain.Offer
	byID   map[string]*contracts.OfferAdminDTO
}

func (f *fakeOfferStore) ActiveOffersFor(ctx context.Context, keys []contracts.ProductKey, at time.Time) ([]*domain.Offer, error) {
	return f.active, nil
}

func (f *fakeOfferStore) InsertMut(offer *domain.Offer, now time.Time) *spanner.Mutation {
	return spanner.Insert("offers", []string{"offer_id"}, []interface{}{offer.ID()})
}

func (f *fakeOfferStore) UpdateMut(offer *domain.Offer, now time.Time) *spanner.Mutation {
	return spanner.Update("offers", []string{"offer_id"}, []interface{}{offer.ID()})
}

func (f *fakeOfferStore) DeleteMut(offerID string) *spanner.Mutation {
	return spanner.Delete("offers", spanner.Key{offerID})
}

func (f *fakeOfferStore) GetByID(ctx context.Context, offerID string) (*contracts.OfferAdminDTO, error) {
	if dto, ok := f.byID[offerID]; ok {
		return dto, nil
	}
	return nil, domain.ErrOfferNotFound
}

func (f *fakeOfferStore) List(ctx context.Context, limit, offset int64) (*contracts.OfferListResult, error) {
	result := &contracts.OfferListResult{Total: int64(len(f.byID))}
	for _, dto := range f.byID {
		result.Offers = append(result.Offers, dto)
	}
	return result, nil
}

type fakeCommitter struct {
	plans []*committer.Plan
	err   error
}

func (f *fakeCommitter) Apply(ctx context.Context, plan *committer.Plan) error {
	if f.err != nil {
		return f.err
	}
	f.plans = append(f.plans, plan)
	return nil
}

func newTestRouter(reader *fakeReader, offers *fakeOfferStore, comm *fakeCommitter) http.Handler {
	clk := clock.NewFixed(testNow)
	resolver := pricing.NewResolver(offers, clk)

	catalog := NewCatalogHandler(
		list_catalog.NewQuery(reader, resolver),
		get_product.NewQuery(reader, resolver),
	)
	admin := NewOffersHandler(
		create_offer.NewInteractor(offers, newAuditStub(), comm, clk),
		update_offer.NewInteractor(offers, newAuditStub(), comm, clk),
		delete_offer.NewInteractor(offers, newAuditStub(), comm, clk),
		list_offers.NewQuery(offers),
		offers,
	)

	return NewRouter(catalog, admin, RouterConfig{
		AdminToken:  testAdminToken,
		PublicRPS:   1000,
		PublicBurst: 1000,
	})
}

type auditStub struct{}

func newAuditStub() contracts.AuditRepository {
	return auditStub{}
}

func (auditStub) InsertMut(event *contracts.OfferEvent) *spanner.Mutation {
	return spanner.Insert("offer_events", []string{"event_id"}, []interface{}{event.EventID})
}

func mustOffer(t *testing.T, params domain.OfferParams) *domain.Offer {
	t.Helper()
	offer, err := domain.NewOffer(params)
	require.NoError(t, err)
	return offer
}

func mustMoney(t *testing.T, v string) *domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(v)
	require.NoError(t, err)
	return m
}
