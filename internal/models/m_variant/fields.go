package m_variant

// Field name constants for the variants table.
const (
	TableName = "variants"

	VariantID                = "variant_id"
	ProductID                = "product_id"
	Label                    = "label"
	PriceNumerator           = "price_numerator"
	PriceDenominator         = "price_denominator"
	PriceOriginalNumerator   = "price_original_numerator"
	PriceOriginalDenominator = "price_original_denominator"
	Active                   = "active"
	SortOrder                = "sort_order"
	CreatedAt                = "created_at"
	UpdatedAt                = "updated_at"
)
