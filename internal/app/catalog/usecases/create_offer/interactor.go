// Package create_offer handles the admin "create offer" operation.
package create_offer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
	"github.com/makanikart/catalog-service/internal/pkg/committer"
)

// Request contains validated-at-the-edge admin input; domain validation
// happens in domain.NewOffer and is never bypassed.
type Request struct {
	Title      string
	Type       domain.DiscountType
	Value      *big.Rat
	ProductID  *string
	CategoryID *string
	TagID      *string
	StartAt    *time.Time
	EndAt      *time.Time
}

// Interactor handles offer creation.
type Interactor struct {
	repo  contracts.OfferRepository
	audit contracts.AuditRepository
	comm  contracts.Committer
	clock clock.Clock
}

// NewInteractor wires the create offer usecase.
func NewInteractor(repo contracts.OfferRepository, audit contracts.AuditRepository, comm contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{repo: repo, audit: audit, comm: comm, clock: clk}
}

// Execute validates and persists a new offer together with its audit
// event in one transaction, returning the new offer id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	offer, err := domain.NewOffer(domain.OfferParams{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Type:       req.Type,
		Value:      req.Value,
		ProductID:  req.ProductID,
		CategoryID: req.CategoryID,
		TagID:      req.TagID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
	})
	if err != nil {
		return "", err
	}

	now := i.clock.Now()
	event, err := shared.NewOfferEvent(shared.EventOfferCreated, offer, now)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(offer, now))
	plan.Add(i.audit.InsertMut(event))

	if err := i.comm.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("commit offer: %w", err)
	}
	return offer.ID(), nil
}
