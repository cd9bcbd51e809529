// Package update_offer handles the admin "update offer" operation.
package update_offer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
	"github.com/makanikart/catalog-service/internal/pkg/committer"
)

// Request is a full replacement of an existing offer's fields.
type Request struct {
	OfferID    string
	Title      string
	Type       domain.DiscountType
	Value      *big.Rat
	ProductID  *string
	CategoryID *string
	TagID      *string
	StartAt    *time.Time
	EndAt      *time.Time
}

// Interactor handles offer updates.
type Interactor struct {
	repo  contracts.OfferRepository
	audit contracts.AuditRepository
	comm  contracts.Committer
	clock clock.Clock
}

// NewInteractor wires the update offer usecase.
func NewInteractor(repo contracts.OfferRepository, audit contracts.AuditRepository, comm contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{repo: repo, audit: audit, comm: comm, clock: clk}
}

// Execute replaces the offer's fields after revalidating the full
// record. Nothing is applied when validation fails or the offer is
// missing.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if _, err := i.repo.GetByID(ctx, req.OfferID); err != nil {
		return err
	}

	offer, err := domain.NewOffer(domain.OfferParams{
		ID:         req.OfferID,
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
		return err
	}

	now := i.clock.Now()
	event, err := shared.NewOfferEvent(shared.EventOfferUpdated, offer, now)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(offer, now))
	plan.Add(i.audit.InsertMut(event))

	if err := i.comm.Apply(ctx, plan); err != nil {
		return fmt.Errorf("commit offer update: %w", err)
	}
	return nil
}
