package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID            = "product_id"
	Name                 = "name"
	Slug                 = "slug"
	Description          = "description"
	SKU                  = "sku"
	CoverURL             = "cover_url"
	CategoryID           = "category_id"
	SubcategoryID        = "subcategory_id"
	BasePriceNumerator   = "base_price_numerator"
	BasePriceDenominator = "base_price_denominator"
	Status               = "status"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)

// TagsTableName is the tag membership table interleaved with products.
const TagsTableName = "product_tags"

// Tag membership columns.
const (
	TagProductID = "product_id"
	TagID        = "tag_id"
)
