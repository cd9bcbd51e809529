package m_offer

// Field name constants for the offers table.
const (
	TableName = "offers"

	OfferID       = "offer_id"
	Title         = "title"
	DiscountType  = "discount_type"
	DiscountValue = "discount_value"
	ProductID     = "product_id"
	CategoryID    = "category_id"
	TagID         = "tag_id"
	StartAt       = "start_at"
	EndAt         = "end_at"
	CreatedAt     = "created_at"
	UpdatedAt     = "updated_at"
)
