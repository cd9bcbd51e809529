package m_offer_event

// Field name constants for the offer_events audit table.
const (
	TableName = "offer_events"

	EventID   = "event_id"
	OfferID   = "offer_id"
	EventType = "event_type"
	Payload   = "payload"
	CreatedAt = "created_at"
)
