package m_offer_event

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for writes to the offer_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation appending an audit event.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			EventID,
			OfferID,
			EventType,
			Payload,
			CreatedAt,
		},
		[]interface{}{
			data.EventID,
			data.OfferID,
			data.EventType,
			data.Payload,
			data.CreatedAt,
		},
	)
}
