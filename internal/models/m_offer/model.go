package m_offer

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the offers table.
// Timestamps come from the caller's clock so they stay consistent with
// the audit event written in the same commit plan.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an offer.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			OfferID,
			Title,
			DiscountType,
			DiscountValue,
			ProductID,
			CategoryID,
			TagID,
			StartAt,
			EndAt,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.OfferID,
			data.Title,
			data.DiscountType,
			data.DiscountValue,
			data.ProductID,
			data.CategoryID,
			data.TagID,
			data.StartAt,
			data.EndAt,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// UpdateMut creates a Spanner mutation replacing every offer column
// except created_at, which keeps its original value.
func (m *Model) UpdateMut(data *Data) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{
			OfferID,
			Title,
			DiscountType,
			DiscountValue,
			ProductID,
			CategoryID,
			TagID,
			StartAt,
			EndAt,
			UpdatedAt,
		},
		[]interface{}{
			data.OfferID,
			data.Title,
			data.DiscountType,
			data.DiscountValue,
			data.ProductID,
			data.CategoryID,
			data.TagID,
			data.StartAt,
			data.EndAt,
			data.UpdatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting an offer.
func (m *Model) DeleteMut(offerID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{offerID})
}
