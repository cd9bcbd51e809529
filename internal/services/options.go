package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"

	"github.com/makanikart/catalog-service/internal/app/catalog/pricing"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/get_product"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/list_catalog"
	"github.com/makanikart/catalog-service/internal/app/catalog/queries/list_offers"
	"github.com/makanikart/catalog-service/internal/app/catalog/repo"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/create_offer"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/delete_offer"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/update_offer"
	"github.com/makanikart/catalog-service/internal/config"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
	"github.com/makanikart/catalog-service/internal/pkg/committer"
	transport "github.com/makanikart/catalog-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Router        http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.AppConfig) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	clk := clock.NewSystem()
	comm := committer.NewCommitter(spannerClient)

	catalogReader := repo.NewCatalogReadModel(spannerClient)
	offerRepo := repo.NewOfferRepo(spannerClient)
	auditRepo := repo.NewAuditRepo()

	resolver := pricing.NewResolver(offerRepo, clk)

	listCatalogQuery := list_catalog.NewQuery(catalogReader, resolver)
	getProductQuery := get_product.NewQuery(catalogReader, resolver)
	listOffersQuery := list_offers.NewQuery(offerRepo)

	createOffer := create_offer.NewInteractor(offerRepo, auditRepo, comm, clk)
	updateOffer := update_offer.NewInteractor(offerRepo, auditRepo, comm, clk)
	deleteOffer := delete_offer.NewInteractor(offerRepo, auditRepo, comm, clk)

	catalogHandler := transport.NewCatalogHandler(listCatalogQuery, getProductQuery)
	offersHandler := transport.NewOffersHandler(createOffer, updateOffer, deleteOffer, listOffersQuery, offerRepo)

	router := transport.NewRouter(catalogHandler, offersHandler, transport.RouterConfig{
		AdminToken:     cfg.AdminToken,
		PublicRPS:      cfg.RateLimit.RPS,
		PublicBurst:    cfg.RateLimit.Burst,
		RequestTimeout: cfg.HTTP.RequestTimeout(),
	})

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Router:        router,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
