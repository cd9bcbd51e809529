package contracts

import (
	"time"

	"cloud.google.com/go/spanner"
)

// OfferEvent records one admin mutation of an offer for the audit trail.
type OfferEvent struct {
	EventID   string
	OfferID   string
	EventType string // offer_created, offer_updated, offer_deleted
	Payload   string // JSON snapshot of the offer after the change
	CreatedAt time.Time
}

// AuditRepository writes offer change events in the same transaction as
// the offer mutation itself.
type AuditRepository interface {
	InsertMut(event *OfferEvent) *spanner.Mutation
}
