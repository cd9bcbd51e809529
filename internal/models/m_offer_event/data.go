package m_offer_event

import (
	"time"
)

// Data mirrors an offer_events row. Events are append-only.
type Data struct {
	EventID   string    `spanner:"event_id"`
	OfferID   string    `spanner:"offer_id"`
	EventType string    `spanner:"event_type"`
	Payload   string    `spanner:"payload"`
	CreatedAt time.Time `spanner:"created_at"`
}
