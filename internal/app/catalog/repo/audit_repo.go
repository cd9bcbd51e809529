package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/makanikart/catalog-service/internal/app/catalog/contracts"
	"github.com/makanikart/catalog-service/internal/models/m_offer_event"
)

// AuditRepo writes offer change events for Spanner.
type AuditRepo struct {
	model *m_offer_event.Model
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo() contracts.AuditRepository {
	return &AuditRepo{model: m_offer_event.NewModel()}
}

// InsertMut creates a mutation appending an audit event. It joins the
// offer mutation's commit plan so the trail never diverges from the data.
func (r *AuditRepo) InsertMut(event *contracts.OfferEvent) *spanner.Mutation {
	return r.model.InsertMut(&m_offer_event.Data{
		EventID:   event.EventID,
		OfferID:   event.OfferID,
		EventType: event.EventType,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	})
}
