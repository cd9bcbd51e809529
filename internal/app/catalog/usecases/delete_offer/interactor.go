// Package delete_offer handles the admin "delete offer" operation.
package delete_offer

import (
	"context"
	"fmt"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/usecases/shared"
	"github.com/makanikart/catalog-service/internal/pkg/clock"
	"github.com/makanikart/catalog-service/internal/pkg/committer"
)

// Interactor handles offer deletion.
type Interactor struct {
	repo  contracts.OfferRepository
	audit contracts.AuditRepository
	comm  contracts.Committer
	clock clock.Clock
}

// NewInteractor wires the delete offer usecase.
func NewInteractor(repo contracts.OfferRepository, audit contracts.AuditRepository, comm contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{repo: repo, audit: audit, comm: comm, clock: clk}
}

// Execute removes the offer, recording a final snapshot in the audit
// trail. Returns domain.ErrOfferNotFound for unknown ids.
func (i *Interactor) Execute(ctx context.Context, offerID string) error {
	existing, err := i.repo.GetByID(ctx, offerID)
	if err != nil {
		return err
	}

	event, err := shared.NewOfferEvent(shared.EventOfferDeleted, existing.Offer, i.clock.Now())
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(offerID))
	plan.Add(i.audit.InsertMut(event))

	if err := i.comm.Apply(ctx, plan); err != nil {
		return fmt.Errorf("commit offer delete: %w", err)
	}
	return nil
}
