// Package shared holds helpers common to the offer usecases.
package shared

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/app/catalog/domain"
)

// Audit event types for offer administration.
const (
	EventOfferCreated = "offer_created"
	EventOfferUpdated = "offer_updated"
	EventOfferDeleted = "offer_deleted"
)

type offerSnapshot struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	DiscountType string     `json:"discount_type"`
	DiscountVal  string     `json:"discount_val"`
	ProductID    *string    `json:"product_id,omitempty"`
	CategoryID   *string    `json:"category_id,omitempty"`
	TagID        *string    `json:"tag_id,omitempty"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	EndAt        *time.Time `json:"end_at,omitempty"`
}

// NewOfferEvent builds an audit event carrying a JSON snapshot of the
// offer after the change.
func NewOfferEvent(eventType string, offer *domain.Offer, at time.Time) (*contracts.OfferEvent, error) {
	snap := offerSnapshot{
		ID:           offer.ID(),
		Title:        offer.Title(),
		DiscountType: string(offer.Type()),
		DiscountVal:  offer.Value().FloatString(2),
		ProductID:    offer.ProductID(),
		CategoryID:   offer.CategoryID(),
		TagID:        offer.TagID(),
		StartAt:      offer.StartAt(),
		EndAt:        offer.EndAt(),
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serialize offer snapshot: %w", err)
	}

	return &contracts.OfferEvent{
		EventID:   uuid.New().String(),
		OfferID:   offer.ID(),
		EventType: eventType,
		Payload:   string(payload),
		CreatedAt: at,
	}, nil
}
